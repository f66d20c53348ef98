// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vibecoding2k26/server/models"
	"github.com/vibecoding2k26/server/testutil"
)

func boolPtr(b bool) *bool { return &b }

func validIntake() models.CreateRegistrationRequest {
	return models.CreateRegistrationRequest{
		Name:            "Jordan Example",
		PersonalEmail:   "jordan@example.com",
		TriedVibeCoding: boolPtr(true),
	}
}

func TestCreateRegistration_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRegistrationHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name           string
		mutate         func(*models.CreateRegistrationRequest)
		expectedStatus int
		badField       string
	}{
		{
			name:           "valid minimal payload",
			mutate:         func(r *models.CreateRegistrationRequest) {},
			expectedStatus: http.StatusCreated,
		},
		{
			// "Jo" is exactly the 2-character minimum and must pass
			name: "name at minimum length",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.Name = "Jo"
				r.PersonalEmail = "a@b.com"
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "name below minimum length",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.Name = "J"
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "name",
		},
		{
			name: "name above maximum length",
			mutate: func(r *models.CreateRegistrationRequest) {
				for len(r.Name) <= 100 {
					r.Name += "xyzzy"
				}
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "name",
		},
		{
			name: "malformed personal email",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.PersonalEmail = "not-an-email"
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "personal_email",
		},
		{
			name: "malformed college email",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.CollegeEmail = "still not an email"
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "college_email",
		},
		{
			name: "github link is not a URL",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.GithubURL = "github dot com slash me"
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "github_url",
		},
		{
			name: "linkedin link without scheme",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.LinkedinURL = "linkedin.com/in/someone"
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "linkedin_url",
		},
		{
			// Instagram is a handle field, not a URL field
			name: "instagram handle is free text",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.InstagramURL = "@someone"
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "essay answer above 1000 characters",
			mutate: func(r *models.CreateRegistrationRequest) {
				for len(r.VibeCodingProjects) <= 1000 {
					r.VibeCodingProjects += "padding "
				}
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "vibe_coding_projects",
		},
		{
			name: "experience answer missing",
			mutate: func(r *models.CreateRegistrationRequest) {
				r.TriedVibeCoding = nil
			},
			expectedStatus: http.StatusBadRequest,
			badField:       "tried_vibe_coding",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validIntake()
			// Distinct emails so earlier successes don't trip the
			// uniqueness constraint for later cases
			req.PersonalEmail = "case" + string(rune('a'+i)) + "@example.com"
			tt.mutate(&req)

			w := httptest.NewRecorder()
			handler.Create(w, testutil.MakeRequest("POST", "/api/registrations", req, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.badField != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Fields[tt.badField] == "" {
					t.Errorf("expected a field error for %q, got %v", tt.badField, resp.Fields)
				}
			}
		})
	}
}

func TestCreateRegistration_StoresNullForOmittedOptionals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRegistrationHandler(db, testutil.GetTestConfig())

	req := validIntake()
	req.OtherSocial = "   " // whitespace-only is still "no value"

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/api/registrations", req, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateRegistrationResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Data.ID == "" {
		t.Fatal("expected a store-assigned id")
	}

	var nullCount int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM registration
		WHERE id = $1
		  AND college_email IS NULL
		  AND github_url IS NULL
		  AND linkedin_url IS NULL
		  AND instagram_url IS NULL
		  AND other_social IS NULL
		  AND vibe_coding_projects IS NULL
		  AND realtime_impact IS NULL
		  AND vibe_coding_process IS NULL
		  AND anything_to_say IS NULL
	`, resp.Data.ID).Scan(&nullCount)
	if err != nil {
		t.Fatalf("failed to inspect row: %v", err)
	}
	if nullCount != 1 {
		t.Error("expected every omitted optional field to be stored as NULL")
	}
}

func TestCreateRegistration_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRegistrationHandler(db, testutil.GetTestConfig())

	first := validIntake()
	first.Name = "First Person"
	first.PersonalEmail = "shared@example.com"

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/api/registrations", first, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Same email, different name: must be the conflict outcome, not a
	// generic failure, and must not write a second row
	second := validIntake()
	second.Name = "Second Person"
	second.PersonalEmail = "shared@example.com"

	w = httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/api/registrations", second, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Already registered" {
		t.Errorf("expected 'Already registered', got %q", resp.Error)
	}

	if n := testutil.CountRegistrations(t, db, "shared@example.com"); n != 1 {
		t.Errorf("expected exactly one row for the email, got %d", n)
	}
}

func TestCreateRegistration_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRegistrationHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/api/registrations", nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	if n := testutil.CountRegistrations(t, db, ""); n != 0 {
		t.Errorf("expected no rows after a rejected request, got %d", n)
	}
}
