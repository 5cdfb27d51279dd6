// seed-admin prepares a fresh installation: it opens (or creates) the
// database, ensures the schema exists, and seeds the first admin account.
//
// Usage:
//
//	SEED_ADMIN_USERNAME=admin SEED_ADMIN_PASSWORD=change-me go run ./cmd/seed-admin
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/repository"
	"github.com/nour-apps/nursery-core/internal/service"
	"github.com/nour-apps/nursery-core/pkg/config"
	"github.com/nour-apps/nursery-core/pkg/database"
	appErrors "github.com/nour-apps/nursery-core/pkg/errors"
	"github.com/nour-apps/nursery-core/pkg/logger"
	"github.com/nour-apps/nursery-core/pkg/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		logr.Fatal("SEED_ADMIN_USERNAME and SEED_ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.Driver == config.DriverSQLite || cfg.Database.Driver == "" {
		if err := database.EnsureSchema(ctx, db); err != nil {
			logr.Fatal("failed to ensure schema", zap.Error(err))
		}
	}

	users := service.NewUserService(repository.NewUserRepository(), security.NewBcryptHasher(0), nil, logr)

	err = database.WithinScope(ctx, db, func(scope database.Scope) error {
		_, err := users.Create(ctx, scope, dto.CreateUser{
			Username: username,
			Password: password,
			Role:     "admin",
		})
		return err
	})
	if err != nil {
		if appErrors.Is(err, appErrors.ErrConflict) {
			logr.Info("admin user already exists", zap.String("username", username))
			return
		}
		logr.Fatal("failed to seed admin user", zap.Error(err))
	}

	logr.Info("admin user seeded", zap.String("username", username))
}
