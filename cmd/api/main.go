// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/angelamos/taskvault/internal/config"
	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/health"
	"github.com/angelamos/taskvault/internal/middleware"
	"github.com/angelamos/taskvault/internal/server"
	"github.com/angelamos/taskvault/internal/store"
	"github.com/angelamos/taskvault/internal/todo"
	"github.com/angelamos/taskvault/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
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

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	var redisConn *core.Redis
	if cfg.Redis.URL != "" {
		redisConn, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	} else {
		logger.Info("redis not configured, rate limiter uses local fallback")
	}

	memory := store.NewMemory(cfg.Quota.FreeTodoLimit)
	logger.Info("in-memory store initialized",
		"free_todo_limit", cfg.Quota.FreeTodoLimit,
	)

	userSvc := user.NewService(memory)
	userHandler := user.NewHandler(userSvc)

	todoSvc := todo.NewService(memory)
	todoHandler := todo.NewHandler(todoSvc)

	var redisChecker health.Checker
	if redisConn != nil {
		redisChecker = redisConn
	}
	healthHandler := health.NewHandler(memory, redisChecker, memory.Stats)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	if telemetry != nil {
		router.Use(middleware.Tracing(telemetry.Tracer))
	}

	rateLimiter := middleware.NewRateLimiter(
		rateLimiterClient(redisConn),
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			KeyFunc:  middleware.KeyByUsername,
			FailOpen: true,
		},
	)
	router.Use(rateLimiter.Handler)

	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	resolveByID := middleware.ResolveAccountByID(memory)
	resolveAccount := middleware.ResolveAccountByUsername(memory)
	enforceQuota := middleware.EnforceCreationQuota(cfg.Quota.FreeTodoLimit)
	resolveTodo := middleware.ResolveTodoByID(memory)

	userHandler.RegisterRoutes(router, resolveByID)
	todoHandler.RegisterRoutes(router, resolveAccount, enforceQuota, resolveTodo)

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

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if redisConn != nil {
		if err := redisConn.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

func rateLimiterClient(r *core.Redis) *redis.Client {
	if r == nil {
		return nil
	}
	return r.Client
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

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}
