package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"hellopool/internal/config"
	"hellopool/internal/ops"
	"hellopool/internal/server"
	"hellopool/pkg/pool"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	metrics := pool.NewMetrics(prometheus.DefaultRegisterer)
	p, err := pool.New(&pool.Config{
		Size:            cfg.PoolSize,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Metrics:         metrics,
		ErrorHandler: func(jobErr error) error {
			log.WithError(jobErr).Error("job fault")
			return nil
		},
	})
	if err != nil {
		// There is no degraded pool to fall back to.
		log.Fatalf("failed to build pool: %v", err)
	}

	srv := server.New(cfg, p, log.WithField("component", "server"))
	if err := srv.Listen(); err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		router := ops.NewRouter(p, prometheus.DefaultGatherer, log.WithField("component", "ops"))
		log.Infof("ops endpoints on http://%s", cfg.OpsAddr)
		if err := router.Run(cfg.OpsAddr); err != nil {
			log.WithError(err).Error("ops server stopped")
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := srv.Close(); err != nil {
			log.WithError(err).Error("failed to close listener")
		}
	}()

	log.Infof("serving on %s with %d workers", cfg.ListenAddr, cfg.PoolSize)
	if err := srv.Serve(); err != nil {
		log.WithError(err).Error("serve error")
	}

	if err := p.Close(); err != nil {
		log.Fatalf("pool shutdown reported worker faults: %v", err)
	}
	log.Info("shutdown complete")
}
