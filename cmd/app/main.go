package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tastyfood/cmd"
	httpapi "tastyfood/internal/adapters/in/http"
	"tastyfood/internal/adapters/out/postgres/migrations"
	"tastyfood/internal/adapters/out/rabbitmq"
	"tastyfood/internal/core/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(config, logger); err != nil {
		logger.Fatal("application terminated with error", zap.Error(err))
	}
}

func run(config cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, config)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	publisher, closePublisher, err := newPublisher(config, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(config, gormDB, publisher, logger)

	e, err := httpapi.NewRouter(ctx, app.CreateHTTPServer(), httpapi.RouterConfig{LogLevel: config.LogLevel})
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("starting http server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func openDatabase(ctx context.Context, config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)

	if err = migrations.Up(ctx, gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func newPublisher(config cmd.Config, logger *zap.Logger) (ports.EventPublisher, func(), error) {
	if config.AMQPURL == "" {
		logger.Info("AMQP_URL is empty, domain events are not published")
		return rabbitmq.NopPublisher{}, func() {}, nil
	}

	publisher, err := rabbitmq.Dial(config.AMQPURL, config.AMQPExchange, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close event publisher", zap.Error(err))
		}
	}, nil
}
