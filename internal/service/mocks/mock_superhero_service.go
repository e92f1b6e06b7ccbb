package mocks

import (
	"context"

	"heroapi/internal/model"
	"heroapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSuperheroService struct {
	mock.Mock
}

func (m *MockSuperheroService) GetBySlug(ctx context.Context, slug string) (*model.Superhero, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Superhero), args.Error(1)
}

func (m *MockSuperheroService) List(ctx context.Context, limit, offset int) (*service.SuperheroListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SuperheroListResult), args.Error(1)
}

func (m *MockSuperheroService) PortraitURL(ctx context.Context, slug string) (string, error) {
	args := m.Called(ctx, slug)
	return args.String(0), args.Error(1)
}
