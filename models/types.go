package models

import "time"

// Domain types

// Registration is one participant's submitted application record.
// Optional fields are pointers: nil marshals to JSON null and maps to
// SQL NULL, the explicit no-value marker.
type Registration struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	Name               string    `json:"name"`
	PersonalEmail      string    `json:"personal_email"`
	CollegeEmail       *string   `json:"college_email"`
	GithubURL          *string   `json:"github_url"`
	LinkedinURL        *string   `json:"linkedin_url"`
	InstagramURL       *string   `json:"instagram_url"`
	OtherSocial        *string   `json:"other_social"`
	TriedVibeCoding    bool      `json:"tried_vibe_coding"`
	VibeCodingProjects *string   `json:"vibe_coding_projects"`
	RealtimeImpact     *string   `json:"realtime_impact"`
	VibeCodingProcess  *string   `json:"vibe_coding_process"`
	AnythingToSay      *string   `json:"anything_to_say"`
}

// Request types

// CreateRegistrationRequest is the public intake payload. TriedVibeCoding is
// a pointer so that an absent field is distinguishable from false.
type CreateRegistrationRequest struct {
	Name               string `json:"name"`
	PersonalEmail      string `json:"personal_email"`
	CollegeEmail       string `json:"college_email"`
	GithubURL          string `json:"github_url"`
	LinkedinURL        string `json:"linkedin_url"`
	InstagramURL       string `json:"instagram_url"`
	OtherSocial        string `json:"other_social"`
	TriedVibeCoding    *bool  `json:"tried_vibe_coding"`
	VibeCodingProjects string `json:"vibe_coding_projects"`
	RealtimeImpact     string `json:"realtime_impact"`
	VibeCodingProcess  string `json:"vibe_coding_process"`
	AnythingToSay      string `json:"anything_to_say"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteRegistrationRequest struct {
	ID string `json:"id"`
}

// Response types

type CreateRegistrationResponse struct {
	Data Registration `json:"data"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ListRegistrationsResponse struct {
	Data []Registration `json:"data"`
}

type DeleteRegistrationResponse struct {
	Success bool `json:"success"`
}

type UpdateRegistrationResponse struct {
	Data Registration `json:"data"`
}

type StatsResponse struct {
	Total     int        `json:"total"`
	LatestAt  *time.Time `json:"latest_at"`
	LatestAgo string     `json:"latest_ago,omitempty"`
}

// ErrorResponse is the error envelope for every failure. Fields carries
// per-field messages on intake validation errors and is empty otherwise.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
