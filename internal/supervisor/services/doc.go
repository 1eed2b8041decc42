// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

// Package services adapts long-running components to suture.Service so they
// can be placed in the supervisor tree.
//
// HTTPServerService runs an *http.Server (or anything with the same
// lifecycle methods) and shuts it down gracefully when its context is
// canceled:
//
//	server := &http.Server{Addr: ":8501", Handler: router.SetupChi()}
//	svc := services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("http-server"))
//	tree.AddAPIService(svc)
package services
