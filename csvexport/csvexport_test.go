// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/vibecoding2k26/server/models"
)

func strPtr(s string) *string { return &s }

func snapshot() []models.Registration {
	created := time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)
	return []models.Registration{
		{
			ID:                 "reg-1",
			CreatedAt:          created,
			Name:               `Jo "The Builder" Smith, Jr.`,
			PersonalEmail:      "jo@example.com",
			CollegeEmail:       strPtr("jo@university.edu"),
			GithubURL:          strPtr("https://github.com/jo"),
			TriedVibeCoding:    true,
			VibeCodingProjects: strPtr("Built a planner,\nthen a \"todo\" bot"),
		},
		{
			ID:              "reg-2",
			CreatedAt:       created.Add(time.Hour),
			Name:            "Sam Lee",
			PersonalEmail:   "sam@example.com",
			TriedVibeCoding: false,
		},
	}
}

func TestRender_Idempotent(t *testing.T) {
	regs := snapshot()

	first, err := Render(regs)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := Render(regs)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Render() is not idempotent on a fixed snapshot")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	regs := snapshot()

	doc, err := Render(regs)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("export does not parse back as CSV: %v", err)
	}

	if len(rows) != len(regs)+1 {
		t.Fatalf("expected %d rows (header + records), got %d", len(regs)+1, len(rows))
	}

	// Header row is fixed
	for i, want := range Header {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}

	// Quoted fields reconstruct their original values, including the
	// delimiter, embedded quotes, and the newline
	if rows[1][0] != `Jo "The Builder" Smith, Jr.` {
		t.Errorf("name did not round-trip: %q", rows[1][0])
	}
	if rows[1][8] != "Built a planner,\nthen a \"todo\" bot" {
		t.Errorf("answer did not round-trip: %q", rows[1][8])
	}
}

func TestRender_FieldRendering(t *testing.T) {
	doc, err := Render(snapshot())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(doc)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}

	// Boolean renders as the literal tokens
	if rows[1][7] != "Yes" {
		t.Errorf("expected Yes for tried, got %q", rows[1][7])
	}
	if rows[2][7] != "No" {
		t.Errorf("expected No for not tried, got %q", rows[2][7])
	}

	// Missing optional fields render as empty cells
	for i := 2; i <= 6; i++ {
		if rows[2][i] != "" {
			t.Errorf("expected empty cell at column %d, got %q", i, rows[2][i])
		}
	}

	// Timestamp column
	if rows[1][12] != "2026-01-10 12:30:00" {
		t.Errorf("unexpected timestamp rendering: %q", rows[1][12])
	}
}

func TestRender_Empty(t *testing.T) {
	doc, err := Render(nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Header only
	text := strings.TrimRight(string(doc), "\n")
	if strings.Count(text, "\n") != 0 {
		t.Errorf("expected a single header line, got %q", text)
	}
	if !strings.HasPrefix(text, "Name,Personal Email") {
		t.Errorf("unexpected header line: %q", text)
	}
}
