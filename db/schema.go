// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Registrations. personal_email carries the uniqueness invariant: the store
-- serializes concurrent inserts, so a duplicate surfaces as SQLSTATE 23505.
CREATE TABLE IF NOT EXISTS registration (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    name TEXT NOT NULL,
    personal_email TEXT NOT NULL UNIQUE,
    college_email TEXT,
    github_url TEXT,
    linkedin_url TEXT,
    instagram_url TEXT,
    other_social TEXT,
    tried_vibe_coding BOOLEAN NOT NULL,
    vibe_coding_projects TEXT,
    realtime_impact TEXT,
    vibe_coding_process TEXT,
    anything_to_say TEXT
);

CREATE INDEX IF NOT EXISTS idx_registration_created_at ON registration(created_at);
`
