// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

/*
Package main is the entry point for the Tunepicker server.

Tunepicker serves top-N song picks from a small in-memory catalog, filtered by
genre and ranked by a static popularity score, over a JSON HTTP API.

# Application Architecture

The HTTP server runs under a Suture v4 supervisor tree:

	RootSupervisor ("tunepicker")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: .env, config file and environment via Koanf v2
 2. Logging: zerolog with JSON or console output
 3. Catalog: CATALOG_PATH (YAML or JSON) or the built-in twelve songs
 4. Selector: ranking over the catalog, with Prometheus counters
 5. Router: chi with request IDs, CORS, rate limiting and metrics
 6. Supervisor Tree: restarts the HTTP server on listen failures

# Configuration

Priority: environment variables > .env file > config file > defaults

	HTTP_HOST=0.0.0.0
	HTTP_PORT=8501
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CATALOG_PATH=/data/songs.yaml
	RECOMMEND_MAX_COUNT=5

See package config for the full list.

# Endpoints

	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /api/v1/genres
	GET /api/v1/settings
	GET /api/v1/recommendations?genre=Pop&count=3
	GET /metrics

# Graceful Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains in-flight
requests for up to ShutdownTimeout, then any service that failed to stop is
logged.
*/
package main
