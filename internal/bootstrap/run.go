package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dstokens/tokens-api/config"
)

// RunConfig groups inputs for Run.
type RunConfig struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  *redis.Client
	Logger *slog.Logger
}

// Run builds the services, performs startup reconciliation, serves HTTP, and
// blocks until a shutdown signal arrives.
func Run(ctx context.Context, cfg RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	services, err := BuildServices(ServicesConfig{
		Config: cfg.Config,
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	RunStartupTasks(ctx, services, logger)

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: services,
		Logger:   logger,
	})

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(context.WithoutCancel(gctx), server, logger)
	})

	return g.Wait()
}
