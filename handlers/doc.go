// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the registration API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - RegistrationHandler: the public intake path (validate, insert, classify)
  - AdminHandler: the action-dispatched admin surface (login, list, delete,
    update, export, stats)

Handlers are created via constructor functions that accept *sql.DB and
cliparse.Config.

# Intake

Create validates the payload entirely at the boundary (per-field error map),
normalizes empty optional fields to SQL NULL, and performs a single insert.
A unique-violation on personal_email becomes a 409 "Already registered"
response, distinct from the generic 500 for any other store error.

# Admin Surface

Dispatch routes /admin/registrations by an action query selector plus
method. Login issues a session token; every other action requires a valid
bearer token and fails 401 otherwise. Unknown action/method combinations
fail 400 "Invalid action". Delete is idempotent: removing an absent id
still reports success. Update is a merge patch over a closed column set and
returns 404 for an unknown id. Export streams a date-stamped CSV attachment
rendered by the csvexport package.
*/
package handlers
