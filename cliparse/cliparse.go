package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Token mode values for Config.TokenMode.
const (
	TokenModeLegacy = "legacy"
	TokenModeSigned = "signed"
)

type Config struct {
	Port            int
	DatabaseURL     string
	AdminEmail      string
	AdminPassword   string
	TokenMode       string
	TokenSecret     string
	TokenTTLMinutes int
}

// ParseFlags resolves configuration from CLI flags with env-var fallback.
// The admin credential pair is injected here at process start; nothing in
// the codebase hardcodes it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vibe-server", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Admin login email (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin login password (prefer env)")
	fs.StringVar(&cfg.TokenMode, "token-mode", "", "Session token mode: legacy or signed")
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Signing secret for signed tokens (prefer env)")
	fs.IntVar(&cfg.TokenTTLMinutes, "token-ttl", 0, "Signed token lifetime in minutes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8990 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Credentials - MUST be provided
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		return Config{}, errors.New("ADMIN_EMAIL required")
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if cfg.TokenMode == "" {
		cfg.TokenMode = os.Getenv("TOKEN_MODE")
	}
	if cfg.TokenMode == "" {
		cfg.TokenMode = TokenModeLegacy
	}
	if cfg.TokenMode != TokenModeLegacy && cfg.TokenMode != TokenModeSigned {
		return Config{}, errors.New("TOKEN_MODE must be legacy or signed")
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenMode == TokenModeSigned && cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required in signed token mode")
	}

	if cfg.TokenTTLMinutes == 0 {
		if ttlStr := os.Getenv("TOKEN_TTL_MINUTES"); ttlStr != "" {
			ttl, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid TOKEN_TTL_MINUTES env variable")
			}
			cfg.TokenTTLMinutes = ttl
		} else {
			cfg.TokenTTLMinutes = 720 // default: 12 hours
		}
	}

	return cfg, nil
}
