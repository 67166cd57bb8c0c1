package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/catalog"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/config"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/experience"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/logging"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/server"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/solutions"
	"github.com/anshul-garg27/interview-practice-platform1-sub001/internal/store"
)

// Application aggregates shared infrastructure (data store, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	store *store.Store
	redis *redis.Client
	http  *http.Server

	bgCancels []context.CancelFunc
}

// New bootstraps config, logger, the data store, the optional Redis cache and
// the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("data_dir", cfg.Data.Dir).Msg("starting application bootstrap")

	st := store.New(cfg.Data.Dir, logger)
	st.Load()

	// The query cache is optional. When Redis is configured but unreachable
	// the service runs uncached rather than refusing to start: the catalog is
	// always computable from the in-memory snapshot.
	var redisClient *redis.Client
	var queryCache catalog.QueryCache
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, query cache disabled")
			_ = redisClient.Close()
			redisClient = nil
		} else {
			queryCache = catalog.NewCache(redisClient, cfg.Redis.CacheTTL)
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("query cache enabled")
		}
	}

	catalogSvc := catalog.NewService(st, queryCache, logger)
	catalogHandler := catalog.NewHTTPHandler(catalogSvc, logger)
	experienceHandler := experience.NewHTTPHandler(st, logger)
	solutionsHandler := solutions.NewHTTPHandler(cfg.Data.SolutionsDir, logger)

	apiServer := server.NewHTTPServer(cfg, logger, st, catalogHandler, experienceHandler, solutionsHandler)

	return &Application{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		redis:     redisClient,
		http:      apiServer,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if !a.cfg.Data.Watch {
		return
	}
	bgCtx, cancel := context.WithCancel(ctx)
	a.bgCancels = append(a.bgCancels, cancel)
	go func() {
		if err := a.store.Watch(bgCtx); err != nil && err != context.Canceled {
			a.logger.Warn().Err(err).Msg("data watcher stopped")
		}
	}()
}
