package sqlite

import (
	"context"
	"database/sql"

	"heroapi/internal/model"
	"heroapi/internal/repository"
)

// SuperheroSQLite implements repository.SuperheroRepository on the embedded SQLite store.
type SuperheroSQLite struct {
	db *sql.DB
}

// NewSuperheroSQLite creates a new SuperheroSQLite repository.
func NewSuperheroSQLite(db *sql.DB) *SuperheroSQLite {
	return &SuperheroSQLite{db: db}
}

var _ repository.SuperheroRepository = (*SuperheroSQLite)(nil)

// FindBySlug fetches a single superhero by its slug.
func (r *SuperheroSQLite) FindBySlug(ctx context.Context, slug string) (*model.Superhero, error) {
	const q = `SELECT ` + repository.SuperheroColumns + ` FROM superheroes WHERE slug = ?`
	return repository.ScanSuperhero(r.db.QueryRowContext(ctx, q, slug))
}

// List returns superheroes using LIMIT/OFFSET pagination and a total count.
func (r *SuperheroSQLite) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Superhero], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM superheroes`).Scan(&total); err != nil {
		return nil, err
	}

	const q = `SELECT ` + repository.SuperheroColumns + ` FROM superheroes ORDER BY name ASC, slug ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Superhero, 0)
	for rows.Next() {
		h, err := repository.ScanSuperhero(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Superhero]{Items: items, Total: total}, nil
}
