package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"heroapi/internal/model"
	"heroapi/internal/repository"
	"heroapi/internal/storage"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var (
	ErrNotFound          = errors.New("superhero not found")
	ErrPortraitNotFound  = errors.New("portrait not found")
	ErrPortraitsDisabled = errors.New("portrait storage is not configured")
)

// NotFoundError reports a lookup miss and carries the slug that was attempted.
// errors.Is(err, ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.Slug)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SuperheroListResult is the service-level DTO for paginated superheroes.
type SuperheroListResult struct {
	Items []model.Superhero
	Total int
}

// SuperheroService defines the read use cases of the superhero catalogue.
type SuperheroService interface {
	// GetBySlug returns the superhero with the given slug, or a *NotFoundError.
	// The slug is passed to the store unmodified, including the empty string.
	GetBySlug(ctx context.Context, slug string) (*model.Superhero, error)

	// List returns superheroes using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*SuperheroListResult, error)

	// PortraitURL returns a presigned download URL for the superhero's portrait.
	PortraitURL(ctx context.Context, slug string) (string, error)
}

// superheroService is a concrete implementation of SuperheroService.
type superheroService struct {
	repo          repository.SuperheroRepository
	store         storage.Storage
	presignExpiry time.Duration
}

// NewSuperheroService constructs a new SuperheroService.
// store may be nil, in which case PortraitURL returns ErrPortraitsDisabled.
func NewSuperheroService(repo repository.SuperheroRepository, store storage.Storage, presignExpiry time.Duration) SuperheroService {
	return &superheroService{repo: repo, store: store, presignExpiry: presignExpiry}
}

func (s *superheroService) GetBySlug(ctx context.Context, slug string) (*model.Superhero, error) {
	hero, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Slug: slug}
		}
		return nil, err
	}
	return hero, nil
}

// List returns paginated superheroes without exposing repository types.
func (s *superheroService) List(ctx context.Context, limit, offset int) (*SuperheroListResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SuperheroListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *superheroService) PortraitURL(ctx context.Context, slug string) (string, error) {
	if s.store == nil {
		return "", ErrPortraitsDisabled
	}
	hero, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if hero.PortraitPath == "" {
		return "", ErrPortraitNotFound
	}
	if _, err := s.store.Stat(ctx, hero.PortraitPath); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", ErrPortraitNotFound
		}
		return "", fmt.Errorf("stat portrait: %w", err)
	}
	u, err := s.store.PresignGet(ctx, hero.PortraitPath, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign portrait: %w", err)
	}
	return u, nil
}
