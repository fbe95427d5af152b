package report

import (
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds every request unless a template overrides it.
	DefaultTimeout = 20 * time.Second
)

// EnvBaseURL is the environment variable holding the API base URL.
const EnvBaseURL = "FINCHAT_API_URL"

// Config holds client configuration. Resolve it once at startup and
// hand it to NewClient; it is never re-read per call.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig builds a Config from the environment.
func LoadConfig() Config {
	return NewConfig(os.Getenv(EnvBaseURL))
}

// NewConfig normalizes a raw base URL into a Config with the default
// timeout.
func NewConfig(raw string) Config {
	return Config{
		BaseURL: normalizeBaseURL(raw),
		Timeout: DefaultTimeout,
	}
}

// normalizeBaseURL strips a trailing slash, coerces scheme-less values
// to http:// and falls back to DefaultBaseURL for anything unusable.
func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(u.String(), "/")
}
