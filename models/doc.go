// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRegistrationRequest: the public intake payload
  - LoginRequest: email, password
  - DeleteRegistrationRequest: id

The admin update action deliberately has no request struct; it is a merge
patch decoded as a generic document so that explicit null can clear an
optional field.

# Response Types

Types for JSON responses:

  - CreateRegistrationResponse: data (the created Registration)
  - LoginResponse: success, token or error
  - ListRegistrationsResponse: data (newest first)
  - DeleteRegistrationResponse: success
  - UpdateRegistrationResponse: data (the updated Registration)
  - StatsResponse: total, latest_at, latest_ago
  - ErrorResponse: error, message, fields

# Domain Types

Registration is the one persisted record. Optional fields are *string so a
missing value serializes as JSON null and scans from SQL NULL.
*/
package models
