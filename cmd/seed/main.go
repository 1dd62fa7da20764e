// Command seed applies migrations and inserts the demo dataset. Meant to run
// once at deploy time; a second run is a no-op.
package main

import (
	"context"

	"request_desk/internal/app/seed"
	"request_desk/internal/domain/repository"
	"request_desk/internal/platform/config"
	"request_desk/internal/platform/database"
	"request_desk/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	config.Load()

	log := logger.New(config.AppConfig.Env)
	defer log.Sync()

	database.Connect()
	defer database.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, database.DB, config.AppConfig.MigrationsDir); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	version, err := database.MigrationVersion(ctx, database.DB)
	if err != nil {
		log.Fatal("migration version lookup failed", zap.Error(err))
	}
	log.Info("migrations applied", zap.Int64("schema_version", version))

	seeder := seed.NewSeeder(
		repository.NewPgUserRepository(database.DB),
		repository.NewPgRequestRepository(database.DB),
		repository.NewPgEventRepository(database.DB),
		log,
	)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
}
