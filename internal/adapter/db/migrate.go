package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/01_create_projects.up.sql
var createProjectsUp string

//go:embed migrations/02_create_tasks.up.sql
var createTasksUp string

type migration struct {
	version int
	name    string
	stmt    string
}

// Ordered, append-only. Never edit an entry once it has shipped; add a new
// version instead.
var migrations = []migration{
	{1, "create_projects", createProjectsUp},
	{2, "create_tasks", createTasksUp},
}

const createSchemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version INT NOT NULL,
    name VARCHAR(255) NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (version)
) ENGINE = InnoDB DEFAULT CHARSET = utf8mb4;
`

// Migrate applies all pending migrations in order. Safe to run on every
// startup; already-applied versions are skipped.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int
		if err := db.GetContext(ctx, &applied,
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.version); err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		if _, err := db.ExecContext(ctx, m.stmt); err != nil {
			return fmt.Errorf("apply migration %d_%s: %w", m.version, m.name, err)
		}
		if _, err := db.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.version, m.name); err != nil {
			return fmt.Errorf("record migration %d_%s: %w", m.version, m.name, err)
		}
		zap.L().Info("applied migration", zap.Int("version", m.version), zap.String("name", m.name))
	}

	return nil
}
