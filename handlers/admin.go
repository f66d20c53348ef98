// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vibecoding2k26/server/auth"
	"github.com/vibecoding2k26/server/cliparse"
	"github.com/vibecoding2k26/server/csvexport"
	"github.com/vibecoding2k26/server/middleware"
	"github.com/vibecoding2k26/server/models"
)

// updatableColumns is the closed set of fields the update action may touch.
// Unknown keys are rejected before any SQL is built.
var updatableColumns = map[string]bool{
	"name":                 true,
	"personal_email":       true,
	"college_email":        true,
	"github_url":           true,
	"linkedin_url":         true,
	"instagram_url":        true,
	"other_social":         true,
	"tried_vibe_coding":    true,
	"vibe_coding_projects": true,
	"realtime_impact":      true,
	"vibe_coding_process":  true,
	"anything_to_say":      true,
}

type AdminHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *auth.Service
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, sessions: auth.NewService(cfg)}
}

// Dispatch routes /admin/registrations?action=... The admin surface is one
// endpoint keyed by an action selector plus method; everything except login
// requires a valid bearer token.
func (h *AdminHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	if action == "login" && r.Method == http.MethodPost {
		h.login(w, r)
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if _, err := h.sessions.Validate(token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	switch {
	case action == "list" && r.Method == http.MethodGet:
		h.list(w, r)
	case action == "delete" && r.Method == http.MethodDelete:
		h.delete(w, r)
	case action == "update" && r.Method == http.MethodPut:
		h.update(w, r)
	case action == "export" && r.Method == http.MethodGet:
		h.export(w, r)
	case action == "stats" && r.Method == http.MethodGet:
		h.stats(w, r)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid action")
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		slog.Info("admin login failed")
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	slog.Info("admin login successful")
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Success: true, Token: token})
}

func (h *AdminHandler) list(w http.ResponseWriter, r *http.Request) {
	regs, err := h.fetchAll()
	if err != nil {
		slog.Error("failed to list registrations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	slog.Info("registrations listed", "count", len(regs))
	middleware.JSONResponse(w, http.StatusOK, models.ListRegistrationsResponse{Data: regs})
}

// fetchAll returns the full table, newest creation timestamp first. There is
// no pagination; the table is dashboard-sized.
func (h *AdminHandler) fetchAll() ([]models.Registration, error) {
	rows, err := h.db.Query(`SELECT ` + registrationColumns + ` FROM registration ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []models.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	// Deleting an id that no longer exists still reports success. The admin
	// UI treats delete as fire-and-confirm and the end state is identical.
	if _, err := h.db.Exec(`DELETE FROM registration WHERE id = $1`, req.ID); err != nil {
		slog.Error("failed to delete registration", "error", err, "registration_id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete registration")
		return
	}

	slog.Info("registration deleted", "registration_id", req.ID)
	middleware.JSONResponse(w, http.StatusOK, models.DeleteRegistrationResponse{Success: true})
}

// update is a merge patch: only the provided fields are replaced. The body
// is decoded as a generic document so an explicit null clears an optional
// field, which a typed struct could not distinguish from absence.
func (h *AdminHandler) update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, _ := body["id"].(string)
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}
	delete(body, "id")

	assignments := make([]string, 0, len(body))
	args := []interface{}{id}
	for column, value := range body {
		if !updatableColumns[column] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown field: "+column)
			return
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(assignments) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	query := fmt.Sprintf(`UPDATE registration SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(assignments, ", "), registrationColumns)

	reg, err := scanRegistration(h.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Registration not found")
		return
	}
	if err != nil {
		if isUniqueViolation(err) {
			middleware.JSONResponse(w, http.StatusConflict, models.ErrorResponse{
				Error:   "Conflict",
				Message: "Another registration already uses that email.",
			})
			return
		}
		slog.Error("failed to update registration", "error", err, "registration_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update registration")
		return
	}

	slog.Info("registration updated", "registration_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.UpdateRegistrationResponse{Data: reg})
}

// export renders the current table as a downloadable CSV document. The
// rendering itself is a pure transform over the single fetched snapshot.
func (h *AdminHandler) export(w http.ResponseWriter, r *http.Request) {
	regs, err := h.fetchAll()
	if err != nil {
		slog.Error("failed to fetch registrations for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	doc, err := csvexport.Render(regs)
	if err != nil {
		slog.Error("failed to render export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export registrations")
		return
	}

	filename := fmt.Sprintf("vibe-coding-registrations-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)

	slog.Info("registrations exported", "count", len(regs), "bytes", len(doc))
}

func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	var total int
	var latest sql.NullTime
	err := h.db.QueryRow(`SELECT COUNT(*), MAX(created_at) FROM registration`).Scan(&total, &latest)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	resp := models.StatsResponse{Total: total}
	if latest.Valid {
		t := latest.Time
		resp.LatestAt = &t
		resp.LatestAgo = humanize.Time(t)
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
