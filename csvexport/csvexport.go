// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vibecoding2k26/server/models"
)

// Header is the fixed first row of every export.
var Header = []string{
	"Name",
	"Personal Email",
	"College Email",
	"GitHub",
	"LinkedIn",
	"Instagram",
	"Other Social",
	"Tried Vibe Coding",
	"Vibe Coding Projects",
	"Realtime Impact",
	"Vibe Coding Process",
	"Anything to Say",
	"Registered At",
}

// Render produces the CSV document for a registration snapshot. It is a
// pure transform: the same snapshot yields byte-identical output, and the
// document round-trips through any RFC 4180 reader (fields containing the
// delimiter are quoted, embedded quotes doubled).
func Render(regs []models.Registration) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, reg := range regs {
		if err := cw.Write(record(reg)); err != nil {
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	return buf.Bytes(), nil
}

func record(reg models.Registration) []string {
	tried := "No"
	if reg.TriedVibeCoding {
		tried = "Yes"
	}

	return []string{
		reg.Name,
		reg.PersonalEmail,
		orEmpty(reg.CollegeEmail),
		orEmpty(reg.GithubURL),
		orEmpty(reg.LinkedinURL),
		orEmpty(reg.InstagramURL),
		orEmpty(reg.OtherSocial),
		tried,
		orEmpty(reg.VibeCodingProjects),
		orEmpty(reg.RealtimeImpact),
		orEmpty(reg.VibeCodingProcess),
		orEmpty(reg.AnythingToSay),
		reg.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// orEmpty renders a missing optional field as an empty cell.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
