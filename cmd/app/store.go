package main

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/database/postgres"
)

var errNeedsDatabase = errors.New("DATABASE_URL is not set; this command needs a persistent store")

// openStore picks the storage backend from the configuration. The returned
// func releases it.
func openStore(ctx context.Context) (*content.Services, func(), error) {
	if cfg.UsesMemoryStore() {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		return content.NewMemory(), func() {}, nil
	}

	db, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return content.NewPostgres(db), func() { _ = db.Close() }, nil
}

func openDB(ctx context.Context) (*sql.DB, error) {
	if cfg.UsesMemoryStore() {
		return nil, errNeedsDatabase
	}
	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("connected to database")
	return db, nil
}

// ensureAdmin creates the admin account named in the environment when it is
// missing. An existing account keeps its password.
func ensureAdmin(s *content.Services) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	u, created, err := s.Users.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, "Admin")
	if err != nil {
		return err
	}
	logger.Info("admin account ready", zap.String("email", u.Email), zap.Bool("created", created))
	return nil
}
