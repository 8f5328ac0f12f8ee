// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carterperez-dev/client-portal/internal/admin"
	"github.com/carterperez-dev/client-portal/internal/auth"
	"github.com/carterperez-dev/client-portal/internal/config"
	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/document"
	"github.com/carterperez-dev/client-portal/internal/expense"
	"github.com/carterperez-dev/client-portal/internal/health"
	"github.com/carterperez-dev/client-portal/internal/invoice"
	"github.com/carterperez-dev/client-portal/internal/message"
	"github.com/carterperez-dev/client-portal/internal/middleware"
	"github.com/carterperez-dev/client-portal/internal/project"
	"github.com/carterperez-dev/client-portal/internal/server"
	"github.com/carterperez-dev/client-portal/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	//nolint:errcheck // .env is optional, real env vars win either way
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := core.EnsureSchema(ctx, db.DB); err != nil {
		return err
	}
	logger.Info("schema ensured")

	if cfg.Seed.Demo {
		if err := core.Seed(ctx, db.DB); err != nil {
			return err
		}
		logger.Info("demo data seeded")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authRepo := auth.NewRepository(db.DB)
	blacklist := auth.NewRedisBlacklist(redis.Client)
	authSvc := auth.NewService(authRepo, jwtManager, userSvc, blacklist)
	authHandler := auth.NewHandler(authSvc)
	go authSvc.PurgeExpiredTokens(ctx, time.Hour, logger)

	projectRepo := project.NewRepository(db.DB)
	projectSvc := project.NewService(projectRepo)
	projectHandler := project.NewHandler(projectSvc)

	invoiceRepo := invoice.NewRepository(db.DB)
	invoiceSvc := invoice.NewService(invoiceRepo)
	invoiceHandler := invoice.NewHandler(invoiceSvc)

	messageRepo := message.NewRepository(db.DB)
	messageSvc := message.NewService(messageRepo, projectSvc)
	messageHandler := message.NewHandler(messageSvc)

	expenseRepo := expense.NewRepository(db.DB)
	expenseSvc := expense.NewService(expenseRepo)
	expenseHandler := expense.NewHandler(expenseSvc)

	docSvc := setupDocuments(ctx, cfg.Drive, logger)
	docHandler := document.NewHandler(docSvc)

	healthHandler := health.NewHandler(db, redis, docSvc.State())

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:      db.Stats,
		RedisStats:   redis.PoolStats,
		DBPing:       db.Ping,
		RedisPing:    redis.Ping,
		StorageState: docSvc.State().String,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())
	router.Handle("/metrics", promhttp.Handler())

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		projectHandler.RegisterRoutes(r, authenticator)
		invoiceHandler.RegisterRoutes(r, authenticator)
		messageHandler.RegisterRoutes(r, authenticator)
		expenseHandler.RegisterRoutes(r, authenticator)
		docHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// setupDocuments wires the document storage bridge. Missing or expired
// credentials are not fatal, the service starts degraded and every
// document operation reports unavailability until the operator fixes
// the token file.
func setupDocuments(
	ctx context.Context,
	cfg config.DriveConfig,
	logger *slog.Logger,
) *document.Service {
	state, err := document.InspectCredentials(cfg.CredentialsPath)
	if err != nil {
		logger.Warn("inspecting storage credentials failed",
			"path", cfg.CredentialsPath,
			"error", err,
		)
	}

	var client document.Client
	if state == document.StateValid {
		client, err = document.NewDriveClient(ctx, cfg.CredentialsPath, cfg.ChunkSize)
		if err != nil {
			logger.Warn("document storage client unavailable", "error", err)
			state = document.StateExpired
		}
	}

	if state != document.StateValid {
		logger.Warn("document storage degraded",
			"state", state.String(),
		)
	} else {
		logger.Info("document storage connected",
			"chunk_size", cfg.ChunkSize,
		)
	}

	return document.NewService(client, state, cfg, logger)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
