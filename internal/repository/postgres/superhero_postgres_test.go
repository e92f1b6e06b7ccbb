package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"heroapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superheroCols = []string{
	"id", "slug", "name", "real_name", "publisher", "first_appearance",
	"description", "portrait_path", "created_at", "updated_at",
}

func TestSuperheroPostgres_FindBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSuperheroPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(superheroCols).
			AddRow("id-1", "batman", "Batman", "Bruce Wayne", "DC", "Detective Comics #27", "", "portraits/batman.png", now, now)

		mock.ExpectQuery("SELECT (.+) FROM superheroes WHERE slug = \\$1").
			WithArgs("batman").
			WillReturnRows(rows)

		hero, err := repo.FindBySlug(ctx, "batman")

		require.NoError(t, err)
		assert.Equal(t, "batman", hero.Slug)
		assert.Equal(t, "Batman", hero.Name)
		assert.Equal(t, "Bruce Wayne", hero.RealName)
		assert.Equal(t, "portraits/batman.png", hero.PortraitPath)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM superheroes WHERE slug = \\$1").
			WithArgs("unknown-hero").
			WillReturnError(sql.ErrNoRows)

		hero, err := repo.FindBySlug(ctx, "unknown-hero")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, hero)
	})

	t.Run("empty slug is looked up as is", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM superheroes WHERE slug = \\$1").
			WithArgs("").
			WillReturnRows(sqlmock.NewRows(superheroCols))

		hero, err := repo.FindBySlug(ctx, "")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, hero)
	})

	t.Run("driver error propagates", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM superheroes WHERE slug = \\$1").
			WithArgs("batman").
			WillReturnError(errors.New("connection reset"))

		hero, err := repo.FindBySlug(ctx, "batman")

		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, hero)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuperheroPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSuperheroPostgres(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM superheroes").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(superheroCols).
			AddRow("id-1", "batman", "Batman", "", "", "", "", "", now, now).
			AddRow("id-2", "superman", "Superman", "", "", "", "", "", now, now)

		mock.ExpectQuery("SELECT (.+) FROM superheroes ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "superman", res.Items[1].Slug)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM superheroes").
			WillReturnError(errors.New("db fail"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
