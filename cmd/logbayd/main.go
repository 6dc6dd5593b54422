package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"logbay/internal/catalog"
	"logbay/internal/config"
	"logbay/internal/logging"
	"logbay/internal/server"
	"logbay/internal/services"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	// Catalogs are built completely before the listener accepts anything;
	// a missing or malformed descriptor file means the daemon must not serve.
	descriptors, err := services.Load(cfg.Catalog.ServicesFile)
	if err != nil {
		log.Fatalf("load service descriptors: %v", err)
	}
	serviceCatalog, err := catalog.BuildServiceCatalog(descriptors, catalog.Resolver{Root: cfg.Catalog.ServiceLogRoot})
	if err != nil {
		log.Fatalf("build service catalog: %v", err)
	}
	systemCatalog := catalog.SystemCatalog()

	logger.Info("catalogs built",
		logging.Int("system_sources", systemCatalog.Len()),
		logging.Int("service_sources", serviceCatalog.Len()))

	srv, err := server.New(cfg, systemCatalog, serviceCatalog, logger)
	if err != nil {
		logger.Error("create server", logging.Error(err))
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		logger.Error("start server", logging.Error(err))
		os.Exit(1)
	}
	defer srv.Stop()

	<-ctx.Done()
	logger.Info("logbayd shutting down")
}
