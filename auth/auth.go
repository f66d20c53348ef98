// Copyright (c) 2026 Vibe Coding 2K26 organizers.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vibecoding2k26/server/cliparse"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service issues and validates admin session tokens. The credential pair is
// a constructor parameter, never a package-level constant.
type Service struct {
	adminEmail    string
	adminPassword string
	mode          string
	secret        []byte
	ttl           time.Duration
}

func NewService(cfg cliparse.Config) *Service {
	return &Service{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		mode:          cfg.TokenMode,
		secret:        []byte(cfg.TokenSecret),
		ttl:           time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
}

// Login checks the credential pair by exact equality and issues a session
// token. The failure is a single generic error: callers cannot tell which
// half of the pair was wrong.
func (s *Service) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	if emailOK&passwordOK != 1 {
		return "", ErrInvalidCredentials
	}

	if s.mode == cliparse.TokenModeSigned {
		return s.issueSigned(email)
	}
	return s.issueLegacy(email), nil
}

// Validate decodes a bearer token and returns the admin identity it proves.
func (s *Service) Validate(token string) (string, error) {
	if s.mode == cliparse.TokenModeSigned {
		return s.validateSigned(token)
	}
	return s.validateLegacy(token)
}

// issueLegacy encodes {email}:{epoch-millis}:{nonce} in plain base64. The
// token is not tamper-proof; validateLegacy only checks the identity prefix.
func (s *Service) issueLegacy(email string) string {
	raw := fmt.Sprintf("%s:%d:%s", email, time.Now().UnixMilli(), uuid.NewString())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// validateLegacy accepts any decodable token whose plaintext starts with the
// configured admin email. No expiry, no signature. Deploy signed mode where
// that matters.
func (s *Service) validateLegacy(token string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !strings.HasPrefix(string(decoded), s.adminEmail) {
		return "", ErrInvalidToken
	}
	return s.adminEmail, nil
}

func (s *Service) issueSigned(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// validateSigned verifies signature and expiry, then checks the subject
// names the configured admin.
func (s *Service) validateSigned(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub != s.adminEmail {
		return "", ErrInvalidToken
	}
	return sub, nil
}
