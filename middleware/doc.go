// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: per-request slog line with method, path, status, duration
  - CORS: permissive cross-origin policy (any origin) with preflight handling
  - JSONResponse / ErrorResponse / ValidationErrorResponse: response writers
    for the shared envelope types
  - ParseJSONBody: request body decoding

The wildcard CORS policy matches the deployed contract: the API serves
non-sensitive operational data to browser clients on other origins.
*/
package middleware
