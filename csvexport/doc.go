// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package csvexport renders a registration snapshot as a comma-delimited
// UTF-8 document with a fixed header row: one line per record, RFC 4180
// quoting, boolean fields as "Yes"/"No", missing optionals as empty cells.
package csvexport
