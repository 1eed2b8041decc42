// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

/*
Package middleware provides HTTP middleware shared by every API route.

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counts, latency and in-flight gauge

Both use the http.HandlerFunc signature. The api package adapts them to chi:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

RequestID must run first so that handlers and the access log see the ID.
*/
package middleware
