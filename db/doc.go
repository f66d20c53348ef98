// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

The schema is a single registration table. The UNIQUE constraint on
personal_email is the only invariant the application delegates to the store:
when two intake attempts race on the same email, Postgres lets exactly one
insert through and the other observes a unique-violation (SQLSTATE 23505).
*/
package db
