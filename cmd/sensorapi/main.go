// Command sensorapi serves mock IoT sensor readings and a gentle CPU load
// endpoint over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/config"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/logging"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/metrics"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/sensor"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/server"
	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		m    *metrics.Metrics
		opts []load.Option
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		opts = append(opts, load.WithOnComplete(m.ObserveLoad))
	}

	srv := server.New(cfg, logger, load.NewGenerator(opts...), sensor.NewSource(), m)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-done:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
