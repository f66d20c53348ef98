// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Vibe Coding 2K26 registration
API server.

The server backs the competition landing page: a public registration intake
endpoint plus an authenticated admin surface for listing, deleting, updating,
and exporting registrations.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_EMAIL=... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 8990 -d "postgres://..." -admin-email ... -admin-password ...

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_EMAIL (-admin-email): admin login identity
  - ADMIN_PASSWORD (-admin-password): admin login password

Optional settings:

  - PORT (-p): server port (default: 8990)
  - TOKEN_MODE (-token-mode): "legacy" or "signed" session tokens
  - TOKEN_SECRET (-token-secret): required when TOKEN_MODE=signed
  - TOKEN_TTL_MINUTES (-token-ttl): signed token lifetime

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (intake, admin surface)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response/domain types
  - auth: admin session token issuance and validation
  - csvexport: CSV rendering of registration snapshots
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
