package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("GITHUB_CLIENT_ID", "app-client")
	t.Setenv("GITHUB_CLIENT_SECRET", "super-secret")
	t.Setenv("GITHUB_CALLBACK_PATH", "/api/connect/github/callback")
	t.Setenv("GITHUB_REDIRECT_URI", "https://api.example.com/api/connect/github/callback")
	t.Setenv("GITHUB_SCOPES", "read:user user:email repo")
	t.Setenv("SESSION_JWT_SECRET", "signing-secret")
	t.Setenv("SESSION_JWT_TTL", "24h")
	t.Setenv("FRONTEND_URL", "https://tokens.example.com")
	t.Setenv("RETURN_PATH_TTL", "10m")
	t.Setenv("PROVIDER_TIMEOUT", "5s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		GitHub: GitHubOAuthConfig{
			Enabled:      true,
			ClientID:     "app-client",
			ClientSecret: "super-secret",
			CallbackPath: "/api/connect/github/callback",
			RedirectURI:  "https://api.example.com/api/connect/github/callback",
			Scopes:       "read:user user:email repo",
			APIBaseURL:   "https://api.github.com",
		},
		Session: SessionConfig{
			Secret: "signing-secret",
			TTL:    24 * time.Hour,
		},
		FrontendURL:     "https://tokens.example.com",
		ReturnPathTTL:   10 * time.Minute,
		ProviderTimeout: 5 * time.Second,
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestAppConfig_ParseHTTPEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("APP_COOKIE_DOMAIN", ".example.com")
	t.Setenv("HTTP_READ_HEADER_TIMEOUT_SECONDS", "15")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := HTTPConfig{
		Addr:              ":8080",
		CookieDomain:      ".example.com",
		ReadHeaderTimeout: 15,
	}
	if !reflect.DeepEqual(cfg.HTTP, expected) {
		t.Fatalf("unexpected http configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.HTTP)
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{
		Session:         SessionConfig{TTL: -1},
		FrontendURL:     "http://localhost:5173///",
		ReturnPathTTL:   0,
		ProviderTimeout: -5 * time.Second,
	}
	cfg.Sanitize()

	if cfg.Session.TTL != 168*time.Hour {
		t.Errorf("expected session TTL guardrail 168h, got %v", cfg.Session.TTL)
	}
	if cfg.ReturnPathTTL != 5*time.Minute {
		t.Errorf("expected return path TTL guardrail 5m, got %v", cfg.ReturnPathTTL)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("expected provider timeout guardrail 10s, got %v", cfg.ProviderTimeout)
	}
	if cfg.FrontendURL != "http://localhost:5173" {
		t.Errorf("expected frontend URL without trailing slashes, got %q", cfg.FrontendURL)
	}
}

func TestAuthConfig_SanitizeKeepsExplicitValues(t *testing.T) {
	cfg := AuthConfig{
		Session:         SessionConfig{TTL: time.Hour},
		FrontendURL:     "https://tokens.example.com",
		ReturnPathTTL:   time.Minute,
		ProviderTimeout: time.Second,
	}
	cfg.Sanitize()

	if cfg.Session.TTL != time.Hour || cfg.ReturnPathTTL != time.Minute || cfg.ProviderTimeout != time.Second {
		t.Errorf("sanitize changed explicit values: %+v", cfg)
	}
	if cfg.FrontendURL != "https://tokens.example.com" {
		t.Errorf("unexpected frontend URL %q", cfg.FrontendURL)
	}
}

func TestGitHubOAuthConfig_ScopeList(t *testing.T) {
	tests := []struct {
		name     string
		scopes   string
		expected []string
	}{
		{
			name:     "default scopes",
			scopes:   "read:user user:email repo",
			expected: []string{"read:user", "user:email", "repo"},
		},
		{
			name:     "extra whitespace",
			scopes:   "  read:user   repo ",
			expected: []string{"read:user", "repo"},
		},
		{
			name:     "empty",
			scopes:   "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GitHubOAuthConfig{Scopes: tt.scopes}.ScopeList()
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d scopes, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("scope %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{ReadHeaderTimeout: 0}
	cfg.Sanitize()
	if cfg.ReadHeaderTimeout != 10 {
		t.Errorf("expected read header timeout guardrail 10, got %d", cfg.ReadHeaderTimeout)
	}

	cfg = HTTPConfig{ReadHeaderTimeout: 30}
	cfg.Sanitize()
	if cfg.ReadHeaderTimeout != 30 {
		t.Errorf("sanitize changed explicit timeout: %d", cfg.ReadHeaderTimeout)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		name     string
		dev      bool
		nodeEnv  string
		expected bool
	}{
		{name: "explicit dev flag", dev: true, nodeEnv: "", expected: true},
		{name: "node env development", dev: false, nodeEnv: "development", expected: true},
		{name: "node env dev", dev: false, nodeEnv: "DEV", expected: true},
		{name: "node env production", dev: false, nodeEnv: "production", expected: false},
		{name: "unset", dev: false, nodeEnv: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			cfg := AppConfig{IsDev: tt.dev}
			cfg.Sanitize()
			if cfg.IsDev != tt.expected {
				t.Errorf("expected IsDev=%v, got %v", tt.expected, cfg.IsDev)
			}
		})
	}
}
