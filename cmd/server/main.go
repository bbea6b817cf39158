package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genc-murat/crystalmetrics/internal/config"
	"github.com/genc-murat/crystalmetrics/internal/export"
	"github.com/genc-murat/crystalmetrics/internal/logger"
	"github.com/genc-murat/crystalmetrics/internal/metrics"
	"github.com/genc-murat/crystalmetrics/internal/probe"
	"github.com/genc-murat/crystalmetrics/internal/server"
)

func main() {
	env := flag.String("env", "development", "configuration environment (config/<env>.yaml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*env)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid config")
	}
	if err := logger.Init(cfg.Logging); err != nil {
		logger.Fatal().Err(err).Msg("Failed to init logger")
	}

	conns := probe.NewConnTracker()
	proc, err := probe.NewProcess(conns)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open process probe")
	}

	sink := metrics.NewMultiSink(metrics.NewLogSink(logger.WithComponent("events")))
	endpoint := metrics.NewEndpoint(proc, metrics.RealClock{}, sink, logger.GetLogger(), cfg.MetricsOptions())
	defer endpoint.Close()

	rules, err := cfg.AlertRules()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load alert rules")
	}
	for _, rule := range rules {
		endpoint.AddRule(rule)
	}

	if cfg.Metrics.Textfile.Enabled {
		writer, err := export.NewTextfileWriter(cfg.ResolvePath(cfg.Metrics.Textfile.Path))
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to prepare textfile export")
		}
		sink.Add(metrics.NewTextfileSink(endpoint, writer, logger.WithComponent("textfile")))
	}

	if *cfg.Metrics.Autostart {
		endpoint.StartCollection(cfg.Metrics.CollectionInterval)
	}

	srv := server.NewServer(endpoint, conns, logger.WithComponent("server"), server.ServerConfig{
		Mode:         cfg.Server.Mode,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("Server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logger.Info().Msg("Server exited")
}
