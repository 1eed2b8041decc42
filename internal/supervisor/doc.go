// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

/*
Package supervisor runs long-lived services under a suture v4 tree.

	RootSupervisor ("tunepicker")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted with suture's failure
threshold, decay and backoff. Supervisor events are logged through the
sutureslog hook, which receives a *slog.Logger backed by zerolog
(see logging.NewSlogLogger).

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("http-server")))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
