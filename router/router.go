// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/vibecoding2k26/server/cliparse"
	"github.com/vibecoding2k26/server/handlers"
	"github.com/vibecoding2k26/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public intake
	mux.HandleFunc("POST /api/registrations", middleware.WithLogging(registrationHandler.Create))

	// Admin surface: a single endpoint dispatched on ?action= plus method,
	// so it is registered without a method pattern
	mux.HandleFunc("/admin/registrations", middleware.WithLogging(adminHandler.Dispatch))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vibe-coding-2k26 API v1"))
	})

	return mux
}
