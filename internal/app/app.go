package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/copdrey/resilience-backend/internal/config"
	"github.com/copdrey/resilience-backend/internal/export"
	"github.com/copdrey/resilience-backend/internal/gocardless"
	"github.com/copdrey/resilience-backend/internal/handler"
	"github.com/copdrey/resilience-backend/internal/lock"
	"github.com/copdrey/resilience-backend/internal/middleware"
	"github.com/copdrey/resilience-backend/internal/notification"
	"github.com/copdrey/resilience-backend/internal/reconciler"
	"github.com/copdrey/resilience-backend/internal/repository"
	"github.com/copdrey/resilience-backend/internal/router"
	"github.com/copdrey/resilience-backend/internal/service"
	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	reconciler *reconciler.Reconciler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ResilienceStudio",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	courseRepo := repository.NewCourseRepo(a.db)
	memberRepo := repository.NewMemberRepo(a.db)
	enrollmentRepo := repository.NewEnrollmentRepo(a.db)
	ledgerRepo := repository.NewLedgerRepo(a.db)
	productRepo := repository.NewProductRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AdminChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	gateway := gocardless.New(a.cfg.GoCardless.BaseURL, a.cfg.GoCardless.AccessToken)
	locker := lock.NewRedisLocker(a.redis)

	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, n, a.log)
	creditService := service.NewCreditService(ledgerRepo, a.log)
	productService := service.NewProductService(productRepo)
	paymentService := service.NewPaymentService(
		paymentRepo,
		productRepo,
		memberRepo,
		gateway,
		locker,
		n,
		a.log,
		a.cfg.GoCardless.PublicBaseURL,
		a.cfg.GoCardless.DeepLinkScheme,
	)
	exporter := export.NewMemberExporter(memberRepo)

	a.reconciler = reconciler.New(memberRepo, a.cfg.Reconciler.Interval, a.log)

	h := handler.NewHandler(
		enrollmentService,
		creditService,
		productService,
		paymentService,
		exporter,
		a.cfg.GoCardless.WebhookSecret,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.reconciler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
