package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort      = errors.New("config: invalid PORT number")
	errBudgetOutOfRange = errors.New("config: INLINE_CSS_BUDGET must be 1000-1000000")
	errTimeoutTooShort  = errors.New("config: STYLESHEET_TIMEOUT_MS must be at least 100")
	errModelRequired    = errors.New("config: OPENAI_MODEL must not be empty")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port              string
	LogLevel          string
	InlineCSSBudget   int
	StylesheetTimeout time.Duration
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
}

// Load reads configuration from environment variables with sensible
// defaults. OPENAI_API_KEY may be empty: the redesign endpoint then
// returns an error while plain analysis keeps working.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "ERROR"),
		InlineCSSBudget:   getEnvAsInt("INLINE_CSS_BUDGET", 80000),
		StylesheetTimeout: time.Duration(getEnvAsInt("STYLESHEET_TIMEOUT_MS", 3000)) * time.Millisecond,
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.InlineCSSBudget < 1000 || c.InlineCSSBudget > 1000000 {
		return fmt.Errorf("%w: got %d", errBudgetOutOfRange, c.InlineCSSBudget)
	}

	if c.StylesheetTimeout < 100*time.Millisecond {
		return fmt.Errorf("%w: got %s", errTimeoutTooShort, c.StylesheetTimeout)
	}

	if c.OpenAIModel == "" {
		return errModelRequired
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
