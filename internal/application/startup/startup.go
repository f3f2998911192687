// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/container"
	schema "github.com/pagemint/pagemint-go/internal/infrastructure/database"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/persistence/database"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
	"github.com/pagemint/pagemint-go/internal/presentation/http/server"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("\033[32m" + `
  ▄▄▄▄   ▄▄▄   ▄▄▄▄  ▄▄▄▄▄ ▄▄   ▄▄ ▄▄ ▄▄   ▄ ▄▄▄▄▄▄
  ██  ██ ██ ██ ██  ▀ ██    ███ ███ ██ ███  █   ██
  ██▄▄█▀ █████ ██ ▄▄ ██▄▄  ██ █ ██ ██ ██ █ █   ██
  ██     ██ ██ ██▄▄█ ██▄▄▄ ██   ██ ██ ██  ██   ██
` + "\033[0m")

	// Step 1: Structured logging
	log.Println("Initializing...")
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDirectory
	loggerConfig.JSONFormat = config.LogJSONFormat
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Sessions signed with an ephemeral secret do not survive a restart;
	// set JWT_SECRET to keep sellers logged in across deploys.
	if config.JWTSecret == "" {
		secret, err := security.GenerateSecureKey(32)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		config.JWTSecret = secret
		logger.Startup().Warn("JWT_SECRET is not set, generated an ephemeral secret")
	}

	// Step 2: Database connection
	logger.Startup().Info("Connecting to database...")
	startDBTime := time.Now()

	driverName, dataSourceName := resolveDataSource()
	db, err := database.NewConnectionWithLogger(driverName, dataSourceName, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(config.DBMaxOpenConns)
	db.SetMaxIdleConns(config.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute)
	db.SetConnMaxIdleTime(time.Duration(config.DBConnMaxIdleMinutes) * time.Minute)

	logger.LogStartupPhase("database", time.Since(startDBTime), true, map[string]any{"driver": driverName})

	// Step 3: Schema and seed content
	logger.Startup().Info("Ensuring database schema...")
	tableCreator := schema.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := tableCreator.SeedInitialContent(db.DB); err != nil {
		return fmt.Errorf("failed to seed initial content: %w", err)
	}

	// Step 4: Dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer := container.NewContainer(db, logger)
	logger.Startup().Info("Container initialization complete")

	// Step 5: Background cache maintenance
	go func() {
		ticker := time.NewTicker(config.CacheCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged := appContainer.Fragments.PurgeExpired()
				appContainer.PerfTracker.Cleanup()
				if purged > 0 {
					logger.Cache().Debug("Purged expired fragments", "count", purged)
				}
			}
		}
	}()

	// Step 6: HTTP server
	logger.Startup().Info("Starting HTTP server...")
	port := config.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing database...")
	if err := db.Close(); err != nil {
		logger.Shutdown().Error("Error closing database", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return logger.Close()
}

// resolveDataSource picks the remote libsql database when configured,
// otherwise the local SQLite file.
func resolveDataSource() (driverName, dataSourceName string) {
	if config.TursoDatabaseURL != "" {
		return "libsql", fmt.Sprintf("%s?authToken=%s", config.TursoDatabaseURL, config.TursoAuthToken)
	}
	return "sqlite3", config.DBPath
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
