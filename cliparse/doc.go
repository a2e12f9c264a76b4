// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Each flag falls back to an environment variable, then to a default:

	-p                  PORT               3318
	-d                  DATABASE_URL       (required)
	-t                  DATABASE_TYPE      sqlite
	-jwt-secret         JWT_SECRET         (required)
	-token-ttl          TOKEN_TTL          24h
	-sweep-interval     SWEEP_INTERVAL     1m
	-results-cache-ttl  RESULTS_CACHE_TTL  10m
	-log-file           LOG_FILE           stdout
	-log-level          LOG_LEVEL          info
	-cors-origin        CORS_ORIGIN        request origin

CLI flags take precedence over environment variables. The server loads a
.env file into the environment before parsing, so it acts as the lowest
layer.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL or JWT_SECRET is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - PORT or a duration does not parse
  - the sweep interval is not positive
*/
package cliparse
