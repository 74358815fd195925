package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/cmd"
	httpadapter "github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/in/http"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/postgres/migrations"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := logger.New(logger.Config{Level: configs.LogLevel, Format: configs.LogFormat, Output: "stdout"})
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs, l)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, l)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewEcho(app.CreateServer(), l)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))

	return startWebServer(ctx, e, configs.HTTPPort, l)
}

func openDatabase(configs cmd.Config, l *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(sqlDB, l); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gormDB, nil
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, l *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		l.Info("HTTP server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	l.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
