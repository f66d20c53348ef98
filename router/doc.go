// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

Routes:

	GET  /health               liveness probe
	POST /api/registrations    public registration intake
	*    /admin/registrations  admin surface, dispatched by ?action= + method

The admin endpoint intentionally has no method pattern; the handler itself
resolves {action, method} pairs and rejects unknown combinations.
*/
package router
