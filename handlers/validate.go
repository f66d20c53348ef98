// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/vibecoding2k26/server/models"
)

const (
	minNameLen   = 2
	maxNameLen   = 100
	maxEmailLen  = 255
	maxLinkLen   = 500
	maxHandleLen = 255
	maxAnswerLen = 1000
)

// validateRegistration checks the intake payload field by field and returns
// a map of field name to message. An empty map means the payload is valid.
// All validation resolves here, before any store access.
func validateRegistration(req *models.CreateRegistrationRequest) map[string]string {
	fields := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		fields["name"] = "Name must be at least 2 characters"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		fields["name"] = "Name must be less than 100 characters"
	}

	email := strings.TrimSpace(req.PersonalEmail)
	if !isEmail(email) {
		fields["personal_email"] = "Please enter a valid email"
	} else if len(email) > maxEmailLen {
		fields["personal_email"] = "Email must be less than 255 characters"
	}

	if v := strings.TrimSpace(req.CollegeEmail); v != "" {
		if !isEmail(v) {
			fields["college_email"] = "Please enter a valid college email"
		} else if len(v) > maxEmailLen {
			fields["college_email"] = "Email must be less than 255 characters"
		}
	}

	for field, value := range map[string]string{
		"github_url":   req.GithubURL,
		"linkedin_url": req.LinkedinURL,
	} {
		if v := strings.TrimSpace(value); v != "" {
			if !isHTTPURL(v) {
				fields[field] = "Please enter a valid URL"
			} else if len(v) > maxLinkLen {
				fields[field] = "URL is too long"
			}
		}
	}

	// Handle-style fields are free text, not URLs
	for field, value := range map[string]string{
		"instagram_url": req.InstagramURL,
		"other_social":  req.OtherSocial,
	} {
		if len(strings.TrimSpace(value)) > maxHandleLen {
			fields[field] = "Must be less than 255 characters"
		}
	}

	if req.TriedVibeCoding == nil {
		fields["tried_vibe_coding"] = "Please select an option"
	}

	for field, value := range map[string]string{
		"vibe_coding_projects": req.VibeCodingProjects,
		"realtime_impact":      req.RealtimeImpact,
		"vibe_coding_process":  req.VibeCodingProcess,
		"anything_to_say":      req.AnythingToSay,
	} {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > maxAnswerLen {
			fields[field] = "Must be less than 1000 characters"
		}
	}

	return fields
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// ParseAddress accepts display-name forms like "Jo <a@b.com>"; the form
	// field must be the bare address.
	return err == nil && addr.Address == s
}

// isHTTPURL accepts only absolute http(s) URLs with a host.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// nullable maps an empty or whitespace-only optional field to SQL NULL.
func nullable(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}
