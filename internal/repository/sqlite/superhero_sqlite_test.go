package sqlite

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroapi/internal/config"
	"heroapi/internal/database"
	"heroapi/internal/database/migration"
	"heroapi/internal/logger"
	"heroapi/internal/repository"
)

func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	log := logger.New(io.Discard, "info", time.UTC)

	db, err := database.NewSQLite(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.EnsureMigrated(ctx, db, config.DriverSQLite, log))
	require.NoError(t, migration.Seed(ctx, db, config.DriverSQLite, migration.DefaultHeroes, log))
	return db
}

func TestSuperheroSQLite_FindBySlug(t *testing.T) {
	repo := NewSuperheroSQLite(newSeededDB(t))
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		hero, err := repo.FindBySlug(ctx, "batman")

		require.NoError(t, err)
		assert.Equal(t, "batman", hero.Slug)
		assert.Equal(t, "Batman", hero.Name)
		assert.Equal(t, "Bruce Wayne", hero.RealName)
		assert.NotEmpty(t, hero.ID)
		assert.False(t, hero.CreatedAt.IsZero())
	})

	t.Run("repeated lookups return the same record", func(t *testing.T) {
		first, err := repo.FindBySlug(ctx, "superman")
		require.NoError(t, err)
		second, err := repo.FindBySlug(ctx, "superman")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("not found", func(t *testing.T) {
		hero, err := repo.FindBySlug(ctx, "unknown-hero")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, hero)
	})

	t.Run("empty slug misses", func(t *testing.T) {
		hero, err := repo.FindBySlug(ctx, "")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, hero)
	})
}

func TestSuperheroSQLite_List(t *testing.T) {
	repo := NewSuperheroSQLite(newSeededDB(t))
	ctx := context.Background()

	res, err := repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Batman", res.Items[0].Name)
	assert.Equal(t, "Superman", res.Items[1].Name)

	res, err = repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "wonder-woman", res.Items[0].Slug)
}
