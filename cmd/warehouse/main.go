package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/odyssey-warehouse/internal/app"
	"github.com/odyssey-erp/odyssey-warehouse/internal/auth"
	"github.com/odyssey-erp/odyssey-warehouse/internal/gate"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/categories"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/products"
	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/warehouses"
	"github.com/odyssey-erp/odyssey-warehouse/internal/observability"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/cache"
	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/db"
	"github.com/odyssey-erp/odyssey-warehouse/internal/rbac"
	"github.com/odyssey-erp/odyssey-warehouse/internal/users"
	"github.com/odyssey-erp/odyssey-warehouse/jobs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("warehouse api", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	pool, err := db.New(ctx, cfg.PGDSN, db.PoolOptions{MaxConns: cfg.PGMaxConns})
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	jobClient := jobs.NewClient(redisOpts)
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("asynq client close", slog.Any("error", err))
		}
	}()
	inspector := asynq.NewInspector(redisOpts)
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("asynq inspector close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	if err != nil {
		return err
	}
	accounts := auth.NewRepository(pool)
	verifier := auth.NewVerifier(tokens, accounts)
	evaluator := rbac.NewEvaluator(rbac.NewRepository(pool))
	guard := gate.NewMiddleware(gate.New(verifier, evaluator,
		gate.WithLogger(logger),
		gate.WithRecorder(metrics),
	))

	authService := auth.NewService(accounts, tokens, redisClient, jobClient, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Metrics:           metrics,
		AuthHandler:       auth.NewHandler(logger, authService),
		MeHandler:         gate.NewMeHandler(logger, evaluator, guard),
		ProductsHandler:   products.NewHandler(logger, products.NewService(products.NewRepository(pool)), guard),
		CategoriesHandler: categories.NewHandler(logger, categories.NewService(categories.NewRepository(pool)), guard),
		WarehousesHandler: warehouses.NewHandler(logger, warehouses.NewService(warehouses.NewRepository(pool)), guard),
		UsersHandler:      users.NewHandler(logger, users.NewService(users.NewRepository(pool)), guard),
		RBACHandler:       rbac.NewHandler(logger, rbac.NewService(rbac.NewRepository(pool)), guard),
		JobHandler:        jobs.NewHandler(inspector, guard, logger),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
