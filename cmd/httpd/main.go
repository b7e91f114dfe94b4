package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/funnelscope/awareness-classifier/internal/api"
	"github.com/funnelscope/awareness-classifier/internal/classifier"
	"github.com/funnelscope/awareness-classifier/internal/config"
	"github.com/funnelscope/awareness-classifier/internal/database"
	"github.com/funnelscope/awareness-classifier/internal/logger"
	"github.com/funnelscope/awareness-classifier/internal/logging"
	"github.com/funnelscope/awareness-classifier/internal/normalize"
	"github.com/funnelscope/awareness-classifier/internal/processor"
	"github.com/funnelscope/awareness-classifier/internal/registry"
	"github.com/funnelscope/awareness-classifier/internal/storage"
	"github.com/funnelscope/awareness-classifier/internal/telemetry"
)

const defaultConfigPath = "config.yml"

func main() {
	cfg, err := config.Load(config.GetConfigPath(defaultConfigPath))
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting awareness classifier",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.String("language", cfg.Classification.Language),
	)

	db, err := database.NewPostgresConnection(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("failed to connect to database", logger.Error(err))
	}
	defer func() { _ = db.Close() }()

	normalizer, err := normalize.New(cfg.Classification.Language)
	if err != nil {
		log.Fatal("failed to build normalizer", logger.Error(err))
	}

	adapter := logging.NewAdapter(log)
	tp := telemetry.NewProvider()

	phasesRepo := database.NewPhasesRepository(db)
	reg := registry.New(phasesRepo, adapter)

	limiter := processor.NewRateLimiter(cfg.Processor.StoreWriteRPS, cfg.Processor.StoreWriteRPS, adapter)
	store := processor.NewRateLimitedStore(phasesRepo, limiter)

	engine := classifier.NewEngine(normalizer, store, adapter, tp)
	analyzer := processor.NewAnalyzer(engine, reg, adapter, tp)

	var poller *processor.Poller
	if cfg.Processor.Enabled {
		contentRepo := database.NewContentRepository(db)
		source := storage.NewContentSourceAdapter(contentRepo)
		poller = processor.NewPoller(source, analyzer, adapter, processor.PollerConfig{
			BatchSize:    cfg.Processor.BatchSize,
			PollInterval: cfg.Processor.PollInterval,
		})
	}

	handler := api.NewHandler(reg, engine, analyzer, db, adapter)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, tp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if poller != nil {
		if err := poller.Start(ctx); err != nil {
			log.Fatal("failed to start content poller", logger.Error(err))
		}
		log.Info("content poller started",
			logger.Int("batch_size", cfg.Processor.BatchSize),
			logger.Duration("poll_interval", cfg.Processor.PollInterval),
		)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server listening", logger.Int("port", cfg.Service.Port))
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		if poller != nil {
			poller.Stop()
		}
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			os.Exit(1)
		}
		log.Info("server stopped")
	}
}
