package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"request_desk/internal/api"
	"request_desk/internal/app/service"
	"request_desk/internal/common/security"
	"request_desk/internal/domain/repository"
	"request_desk/internal/platform/config"
	"request_desk/internal/platform/database"
	"request_desk/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.Load()

	log := logger.New(config.AppConfig.Env)
	defer log.Sync()

	// 2. Initialize JWT
	security.InitJWT()

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	log.Info("database connected")

	// 4. Apply migrations
	if err := database.Migrate(context.Background(), database.DB, config.AppConfig.MigrationsDir); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	version, err := database.MigrationVersion(context.Background(), database.DB)
	if err != nil {
		log.Fatal("migration version lookup failed", zap.Error(err))
	}
	log.Info("migrations applied", zap.Int64("schema_version", version))

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	requestRepo := repository.NewPgRequestRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	requestService := service.NewRequestService(requestRepo, userRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(log, authService, requestService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped gracefully")
}
