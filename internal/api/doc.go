// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

/*
Package api is the HTTP presentation layer for the recommender.

It turns query parameters into Selector requests and Selector results into
JSON, and owns everything the selection core deliberately does not: the
sentinel shown as the default genre option, the count bounds offered to
users, the "no matches" placeholder row and the fuzzy genre suggestion.

Routes:

	GET /api/v1/health/live         liveness and uptime
	GET /api/v1/health/ready        503 until the catalog has songs
	GET /api/v1/genres              genre options, sentinel first
	GET /api/v1/settings            count bounds and display copy
	GET /api/v1/recommendations     ?genre=Pop&count=3
	GET /metrics                    Prometheus exposition

Every JSON response uses the APIResponse envelope:

	{"success":true,"data":{...},"meta":{"request_id":"...","timestamp":"..."}}
	{"success":false,"error":{"code":"VALIDATION_FAILED","message":"count must be at most 5"}}

Middleware order is request ID, real IP, panic recovery, CORS, then per-group
rate limiting, security headers and Prometheus instrumentation.
*/
package api
