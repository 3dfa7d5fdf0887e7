package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/prudhvinik1/accounts/internal/config"
	"github.com/prudhvinik1/accounts/internal/database"
	"github.com/prudhvinik1/accounts/internal/handlers"
	"github.com/prudhvinik1/accounts/internal/repositories"
	"github.com/prudhvinik1/accounts/internal/services"
	"github.com/prudhvinik1/accounts/internal/utils"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", utils.ErrAttr(err))
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	accountRepo, closeStore, err := newAccountRepository(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize storage", slog.String("database_type", cfg.DatabaseType), utils.ErrAttr(err))
		os.Exit(1)
	}
	defer closeStore()

	var reservation repositories.EmailReservation
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to create redis client", utils.ErrAttr(err))
			os.Exit(1)
		}
		defer redisClient.Close()
		reservation = repositories.NewRedisEmailReservation(redisClient)
	}

	accountService := services.NewAccountService(
		accountRepo,
		utils.NewBcryptHasher(cfg.BcryptCost),
		reservation,
		log,
	)

	// Initialize HTTP Server
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", handlers.Health)
	router.Route(cfg.APIPrefix, func(r chi.Router) {
		handlers.AccountRouter(r, accountService, log)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", utils.ErrAttr(err))
		}
	}()

	log.Info("starting server",
		slog.String("port", cfg.ServerPort),
		slog.String("database_type", cfg.DatabaseType),
		slog.Bool("email_reservation", reservation != nil),
	)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", utils.ErrAttr(err))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newAccountRepository picks the backend once, from DATABASE_TYPE, and makes
// sure its schema or indexes exist before serving.
func newAccountRepository(ctx context.Context, cfg *config.Config) (repositories.AccountRepository, func(), error) {
	if cfg.IsDocumentDatabase() {
		client, err := database.NewMongoClient(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}

		db := client.Database(cfg.DatabaseName)
		if err := database.EnsureAccountIndexes(ctx, db); err != nil {
			closeClient()
			return nil, nil, err
		}
		return repositories.NewMongoAccountRepository(db, cfg.WriteTimeout), closeClient, nil
	}

	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.EnsureAccountsTable(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repositories.NewPostgresAccountRepository(pool, cfg.WriteTimeout), pool.Close, nil
}
