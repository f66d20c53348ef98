// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

Resolution order is CLI flag, then environment variable, then default.
Required settings produce an error when absent:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_EMAIL (-admin-email): admin login identity
  - ADMIN_PASSWORD (-admin-password): admin login password

Optional settings:

  - PORT (-p): server port (default 8990)
  - TOKEN_MODE (-token-mode): "legacy" or "signed" (default "legacy")
  - TOKEN_SECRET (-token-secret): HMAC secret, required in signed mode
  - TOKEN_TTL_MINUTES (-token-ttl): signed token lifetime (default 720)

The admin credential pair lives only in configuration. The session service
receives it through the Config value at construction time.
*/
package cliparse
