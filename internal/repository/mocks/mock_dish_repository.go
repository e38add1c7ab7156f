package mocks

import (
	"context"

	"menuapi/internal/model"
	"menuapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct {
	mock.Mock
}

var _ repository.DishRepository = (*MockDishRepository)(nil)

func (m *MockDishRepository) Create(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByID(ctx context.Context, submenuID, id string) (*model.Dish, error) {
	args := m.Called(ctx, submenuID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) ListBySubMenu(ctx context.Context, submenuID string, pq repository.PageQuery) ([]model.Dish, error) {
	args := m.Called(ctx, submenuID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, submenuID, id string) error {
	args := m.Called(ctx, submenuID, id)
	return args.Error(0)
}

func (m *MockDishRepository) TitleOwnedElsewhere(ctx context.Context, submenuID, title string) (bool, error) {
	args := m.Called(ctx, submenuID, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockDishRepository) SetImagePath(ctx context.Context, id, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}
