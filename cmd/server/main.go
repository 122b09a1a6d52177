package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groceryhub/internal/config"
	"groceryhub/internal/infra"
	"groceryhub/internal/router"
	"groceryhub/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	queue := worker.NewRedisQueue(rdb)
	dispatcher := worker.NewDispatcher(queue, cfg.LowStockAlertEmail)
	pool := worker.NewPool(queue, cfg.MirrorMaxAttempts)
	ext := router.External{Alerts: dispatcher}

	mailer := infra.NewMailer(cfg)
	if mailer.Enabled() {
		worker.NewEmailWorker(mailer).Register(pool)
	} else {
		log.Warn().Msg("SMTP_HOST not set, low-stock alert mail disabled")
	}

	var graph *infra.GraphClient
	if cfg.Neo4jURI != "" {
		graph, err = infra.NewGraphClient(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			// The mirror is best-effort; the service runs without it.
			log.Warn().Err(err).Msg("graph store unavailable, mirror and analytics disabled")
		}
	}
	if graph != nil {
		breaker := infra.NewBreaker(infra.DefaultBreakerConfig("graph"))
		worker.NewMirrorWorker(graph, breaker).Register(pool)
		worker.StartReplayCron(ctx, worker.ReplayConfig{
			Queue:    queue,
			Lock:     worker.RedisLock(infra.NewLocker(rdb)),
			Breaker:  breaker,
			Interval: time.Duration(cfg.MirrorReplayIntervalSeconds) * time.Second,
		})
		ext.Mirror = dispatcher
		ext.Graph = graph
	}

	pool.Start(ctx, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, ext)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("groceryhub listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Let pending notifications reach Redis before the workers stop.
	dispatcher.Wait()
	cancel()
	pool.Wait()

	if graph != nil {
		if err := graph.Close(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("graph close")
		}
	}
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
	log.Info().Msg("server exited")
}
