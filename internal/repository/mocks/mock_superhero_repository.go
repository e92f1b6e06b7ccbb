package mocks

import (
	"context"

	"heroapi/internal/model"
	"heroapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSuperheroRepository struct {
	mock.Mock
}

func (m *MockSuperheroRepository) FindBySlug(ctx context.Context, slug string) (*model.Superhero, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Superhero), args.Error(1)
}

func (m *MockSuperheroRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Superhero], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Superhero]), args.Error(1)
}
