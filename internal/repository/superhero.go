package repository

import (
	"context"

	"heroapi/internal/model"
)

// SuperheroRepository defines read access to the superhero catalogue.
// Records are created and changed by migrations or external tooling, never through this interface.
type SuperheroRepository interface {
	// FindBySlug returns the superhero whose slug equals the given value.
	// It returns sql.ErrNoRows when no such record exists.
	FindBySlug(ctx context.Context, slug string) (*model.Superhero, error)

	// List returns a page of superheroes ordered by name, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Superhero], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
