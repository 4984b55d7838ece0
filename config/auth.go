package config

import (
	"strings"
	"time"
)

// GitHubOAuthConfig contains the GitHub OAuth application configuration.
// These values are authoritative: any copy persisted in the settings store
// is overwritten with them at every startup.
type GitHubOAuthConfig struct {
	Enabled      bool   `env:"ENABLED"       envDefault:"true"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	CallbackPath string `env:"CALLBACK_PATH" envDefault:"/api/connect/github/callback"`
	RedirectURI  string `env:"REDIRECT_URI"  envDefault:"http://localhost:1337/api/connect/github/callback"`
	Scopes       string `env:"SCOPES"        envDefault:"read:user user:email repo"`

	// APIBaseURL is the GitHub REST API base. Overridable for tests.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://api.github.com"`
}

// ScopeList returns the configured scopes as a slice.
func (g GitHubOAuthConfig) ScopeList() []string {
	return strings.Fields(g.Scopes)
}

// SessionConfig controls session JWT issuing and verification.
type SessionConfig struct {
	// Secret signs issued session JWTs. Required outside development.
	Secret string `env:"JWT_SECRET" envDefault:"tokens-api-insecure-dev-secret"`

	// TTL is the session token lifetime.
	TTL time.Duration `env:"JWT_TTL" envDefault:"168h"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// GitHub OAuth application (used by login begin, grant, and callback flows).
	GitHub GitHubOAuthConfig `envPrefix:"GITHUB_"`

	// Session JWT settings.
	Session SessionConfig `envPrefix:"SESSION_"`

	// FrontendURL is the base the callback orchestrator redirects to when
	// returnTo is relative or absent.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// ReturnPathTTL bounds how long a returnTo value survives the OAuth round trip.
	ReturnPathTTL time.Duration `env:"RETURN_PATH_TTL" envDefault:"5m"`

	// ProviderTimeout bounds each outbound GitHub API call.
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Session.TTL <= 0 {
		a.Session.TTL = 168 * time.Hour
	}
	if a.ReturnPathTTL <= 0 {
		a.ReturnPathTTL = 5 * time.Minute
	}
	if a.ProviderTimeout <= 0 {
		a.ProviderTimeout = 10 * time.Second
	}
	a.FrontendURL = strings.TrimRight(a.FrontendURL, "/")
}
