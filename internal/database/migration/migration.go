package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"heroapi/internal/config"
)

type migrationStep struct {
	Name string
	SQL  string
}

var postgresSteps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_superheroes",
		SQL: `CREATE TABLE IF NOT EXISTS superheroes (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  slug             TEXT        NOT NULL UNIQUE,
  name             TEXT        NOT NULL,
  real_name        TEXT        NOT NULL DEFAULT '',
  publisher        TEXT        NOT NULL DEFAULT '',
  first_appearance TEXT        NOT NULL DEFAULT '',
  description      TEXT        NOT NULL DEFAULT '',
  portrait_path    TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_superheroes_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_superheroes_name ON superheroes (name);`,
	},
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_superheroes",
		SQL: `CREATE TABLE IF NOT EXISTS superheroes (
  id               TEXT     PRIMARY KEY,
  slug             TEXT     NOT NULL UNIQUE,
  name             TEXT     NOT NULL,
  real_name        TEXT     NOT NULL DEFAULT '',
  publisher        TEXT     NOT NULL DEFAULT '',
  first_appearance TEXT     NOT NULL DEFAULT '',
  description      TEXT     NOT NULL DEFAULT '',
  portrait_path    TEXT     NOT NULL DEFAULT '',
  created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`,
	},
	{
		Name: "create_index_superheroes_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_superheroes_name ON superheroes (name);`,
	},
}

var sentinelQueries = map[string]string{
	config.DriverPostgres: `SELECT to_regclass('public.superheroes') IS NOT NULL`,
	config.DriverSQLite:   `SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'superheroes'`,
}

func stepsFor(driver string) ([]migrationStep, error) {
	switch driver {
	case config.DriverPostgres:
		return postgresSteps, nil
	case config.DriverSQLite:
		return sqliteSteps, nil
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}

// EnsureMigrated checks if the 'superheroes' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_driver", driver).Logger()

	steps, err := stepsFor(driver)
	if err != nil {
		return err
	}

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQueries[driver]).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
