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

	"postbox/api"
	"postbox/cmd"
	httpadapter "postbox/internal/adapters/in/http"
	"postbox/internal/adapters/out/postgres/migrations"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := cmd.NewLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	gormDB := mustGormOpen(configs.DB.DSN())
	if err = migrations.UpGorm(ctx, gormDB); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e := mustRouter(app, logger)
	go startWebServer(e, configs.HTTPPort, logger)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	jobManager.StopAll(shutdownCtx)
	app.Close(shutdownCtx)

	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	return gormDB
}

func mustRouter(app *cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	doc, err := api.Load()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	e, err := httpadapter.NewRouter(app.CreateServer(), doc, logger)
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}
	return e
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	logger.Info("service started", "port", port)

	err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Error starting server: %v", err)
	}
}
