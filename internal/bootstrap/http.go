package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dstokens/tokens-api/config"
	httpx "github.com/dstokens/tokens-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil || cfg.Services == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		GitHubProxy:  cfg.Services.GitHubProxy,
		Designs:      cfg.Services.Designs,
		Collections:  cfg.Services.Collections,
		Groups:       cfg.Services.Groups,
		Tokens:       cfg.Services.Tokens,
		Sessions:     cfg.Services.Sessions,
		Users:        cfg.Services.Repos.Users,
		CallbackPath: appCfg.Auth.GitHub.CallbackPath,
		CookieDomain: appCfg.HTTP.CookieDomain,
		Logger:       logger,
	}

	// Order: Recover -> Logging -> Router (router carries the callback interceptor)
	h := httpx.NewRouter(services)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)

	server := startServer(startServerParams{
		Logger:            logger,
		Handler:           h,
		Addr:              appCfg.HTTP.Addr,
		ReadHeaderTimeout: time.Duration(appCfg.HTTP.ReadHeaderTimeout) * time.Second,
	})
	return server
}

type startServerParams struct {
	Logger            *slog.Logger
	Handler           http.Handler
	Addr              string
	ReadHeaderTimeout time.Duration
}

func startServer(p startServerParams) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	addr := p.Addr
	if addr == "" {
		addr = ":1337"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           p.Handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: p.ReadHeaderTimeout,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		p.Logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.Logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}
