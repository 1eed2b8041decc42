// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

/*
Package config loads and validates the service configuration.

# Configuration Sources

Sources are layered with Koanf v2, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/tunepicker/config.yaml, /etc/tunepicker/config.yml
 3. Environment variables, after a .env file (or DOTENV_PATH) has been
    loaded into the process environment with godotenv

Only the variables listed below are read; anything else in the environment
is ignored.

# Environment Variables

Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8501)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Security:
  - RATE_LIMIT_REQUESTS: requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: limiter window (default: 1m)
  - DISABLE_RATE_LIMIT: true to turn limiting off (default: false)
  - CORS_ORIGINS: comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include file:line (default: false)

Recommendations:
  - RECOMMEND_DEFAULT_COUNT: count used when the request has none (default: 3)
  - RECOMMEND_MIN_COUNT: smallest accepted count (default: 1)
  - RECOMMEND_MAX_COUNT: largest accepted count (default: 5)
  - RECOMMEND_TIMEOUT: per-selection deadline (default: 5s)

Catalog:
  - CATALOG_PATH: JSON or YAML song catalog; empty uses the built-in catalog

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
