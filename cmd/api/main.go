package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/smartsolv/mindmate-engine/internal/adapters/cache"
	adapterHTTP "github.com/smartsolv/mindmate-engine/internal/adapters/handler/http"
	"github.com/smartsolv/mindmate-engine/internal/adapters/storage"
	"github.com/smartsolv/mindmate-engine/internal/config"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
	"github.com/smartsolv/mindmate-engine/internal/core/workers"
	"github.com/smartsolv/mindmate-engine/internal/jobs"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store domain.DocumentStore
		db    *sqlx.DB
		rdb   *redis.Client
	)

	switch cfg.StorageBackend {
	case "postgres":
		log.Info("Connecting to database...")
		db, err = sqlx.Connect("pgx", cfg.PostgresDSN())
		if err != nil {
			log.WithError(err).Fatal("Critical: failed to connect to database")
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		pgStore := storage.NewPostgresStore(db, cfg.DocumentsTable)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("Critical: failed to prepare documents table")
		}
		store = pgStore
		log.Info("Database connected successfully.")

	case "redis":
		rdb, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("Critical: failed to connect to redis")
		}
		store = storage.NewRedisStore(rdb, cfg.RedisPrefix)
		log.Info("Redis connected successfully.")

	default:
		store = storage.NewInMemoryStore()
		log.Warn("Using in-memory storage: tracked data is lost on restart")
	}

	clock := domain.SystemClock{}

	reportWorker := workers.NewReportWorker(store, clock)
	reportWorker.Start(ctx)

	checklistService := services.NewChecklistService(store, clock, reportWorker)
	stressService := services.NewStressService(store, clock, reportWorker)
	walletService := services.NewWalletService(store, clock)
	sessionService := services.NewSessionService(store, clock)
	chatService := services.NewChatService()

	scheduler := jobs.NewScheduler(checklistService)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		SessionHandler:   adapterHTTP.NewSessionHandler(sessionService),
		ChecklistHandler: adapterHTTP.NewChecklistHandler(checklistService),
		StressHandler:    adapterHTTP.NewStressHandler(stressService),
		WalletHandler:    adapterHTTP.NewWalletHandler(walletService),
		AdviceHandler:    adapterHTTP.NewAdviceHandler(),
		ChatHandler:      adapterHTTP.NewChatHandler(chatService),
		DB:               db,
		Redis:            rdb,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("MindMate Score Engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Critical server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Stop signal received. Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("Forced shutdown error")
	}

	log.Info("Server stopped gracefully.")
}
