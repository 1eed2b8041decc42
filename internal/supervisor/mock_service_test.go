// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// errSimulated is returned by MockService while it is configured to fail.
var errSimulated = errors.New("simulated failure")

// MockService is a suture.Service for tests. It blocks until its context is
// canceled, optionally failing a fixed number of times first.
type MockService struct {
	name      string
	failTimes atomic.Int32
	starts    atomic.Int32
	stops     atomic.Int32
	started   chan struct{}
}

// NewMockService creates a mock service that fails the first failTimes runs.
func NewMockService(name string, failTimes int) *MockService {
	m := &MockService{name: name, started: make(chan struct{}, 1)}
	m.failTimes.Store(int32(failTimes))
	return m
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	if m.failTimes.Add(-1) >= 0 {
		return errSimulated
	}

	select {
	case m.started <- struct{}{}:
	default:
	}

	<-ctx.Done()
	return ctx.Err()
}

// Started is signaled the first time Serve reaches its blocking state.
func (m *MockService) Started() <-chan struct{} {
	return m.started
}

// Starts returns how many times Serve was called.
func (m *MockService) Starts() int32 {
	return m.starts.Load()
}

// Stops returns how many times Serve returned.
func (m *MockService) Stops() int32 {
	return m.stops.Load()
}

func (m *MockService) String() string {
	return m.name
}
