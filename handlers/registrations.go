// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vibecoding2k26/server/cliparse"
	"github.com/vibecoding2k26/server/middleware"
	"github.com/vibecoding2k26/server/models"
)

// uniqueViolation is the SQLSTATE the store reports when an insert or update
// hits the personal_email uniqueness constraint.
const uniqueViolation = "23505"

// registrationColumns is the full column list in Registration field order,
// shared by every SELECT and RETURNING clause.
const registrationColumns = `id, created_at, name, personal_email, college_email,
	github_url, linkedin_url, instagram_url, other_social, tried_vibe_coding,
	vibe_coding_projects, realtime_impact, vibe_coding_process, anything_to_say`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRegistration(row rowScanner) (models.Registration, error) {
	var reg models.Registration
	err := row.Scan(&reg.ID, &reg.CreatedAt, &reg.Name, &reg.PersonalEmail,
		&reg.CollegeEmail, &reg.GithubURL, &reg.LinkedinURL, &reg.InstagramURL,
		&reg.OtherSocial, &reg.TriedVibeCoding, &reg.VibeCodingProjects,
		&reg.RealtimeImpact, &reg.VibeCodingProcess, &reg.AnythingToSay)
	return reg, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type RegistrationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRegistrationHandler(db *sql.DB, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{db: db, cfg: cfg}
}

// Create handles POST /api/registrations, the public intake path. On valid
// input it performs exactly one insert; on any failure no row is written.
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if fields := validateRegistration(&req); len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	reg := models.Registration{
		ID:                 uuid.NewString(),
		CreatedAt:          time.Now().UTC(),
		Name:               strings.TrimSpace(req.Name),
		PersonalEmail:      strings.TrimSpace(req.PersonalEmail),
		CollegeEmail:       nullable(req.CollegeEmail),
		GithubURL:          nullable(req.GithubURL),
		LinkedinURL:        nullable(req.LinkedinURL),
		InstagramURL:       nullable(req.InstagramURL),
		OtherSocial:        nullable(req.OtherSocial),
		TriedVibeCoding:    *req.TriedVibeCoding,
		VibeCodingProjects: nullable(req.VibeCodingProjects),
		RealtimeImpact:     nullable(req.RealtimeImpact),
		VibeCodingProcess:  nullable(req.VibeCodingProcess),
		AnythingToSay:      nullable(req.AnythingToSay),
	}

	_, err := h.db.Exec(`
		INSERT INTO registration (
			id, created_at, name, personal_email, college_email,
			github_url, linkedin_url, instagram_url, other_social,
			tried_vibe_coding, vibe_coding_projects, realtime_impact,
			vibe_coding_process, anything_to_say
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, reg.ID, reg.CreatedAt, reg.Name, reg.PersonalEmail, reg.CollegeEmail,
		reg.GithubURL, reg.LinkedinURL, reg.InstagramURL, reg.OtherSocial,
		reg.TriedVibeCoding, reg.VibeCodingProjects, reg.RealtimeImpact,
		reg.VibeCodingProcess, reg.AnythingToSay)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.JSONResponse(w, http.StatusConflict, models.ErrorResponse{
				Error:   "Already registered",
				Message: "This email is already registered for the competition.",
			})
			return
		}
		slog.Error("failed to insert registration", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	slog.Info("registration created", "registration_id", reg.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRegistrationResponse{Data: reg})
}
