package postgres

import (
	"context"
	"database/sql"

	"heroapi/internal/model"
	"heroapi/internal/repository"
)

// SuperheroPostgres is a PostgreSQL implementation of repository.SuperheroRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SuperheroPostgres struct {
	db *sql.DB
}

// NewSuperheroPostgres creates a new SuperheroPostgres repository.
func NewSuperheroPostgres(db *sql.DB) *SuperheroPostgres {
	return &SuperheroPostgres{db: db}
}

var _ repository.SuperheroRepository = (*SuperheroPostgres)(nil)

// FindBySlug fetches a single superhero by its slug.
func (r *SuperheroPostgres) FindBySlug(ctx context.Context, slug string) (*model.Superhero, error) {
	const q = `
		SELECT ` + repository.SuperheroColumns + `
		FROM superheroes
		WHERE slug = $1
	`
	return repository.ScanSuperhero(r.db.QueryRowContext(ctx, q, slug))
}

// List returns superheroes using LIMIT/OFFSET pagination and a total count.
func (r *SuperheroPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Superhero], error) {
	const qCount = `SELECT COUNT(*) FROM superheroes`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + repository.SuperheroColumns + `
		FROM superheroes
		ORDER BY name ASC, slug ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
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

	return &repository.PageResult[model.Superhero]{
		Items: items,
		Total: total,
	}, nil
}
