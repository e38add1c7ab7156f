package mocks

import (
	"context"
	"io"

	"menuapi/internal/model"
	"menuapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDishService struct {
	mock.Mock
}

var _ service.DishService = (*MockDishService)(nil)

func (m *MockDishService) Create(ctx context.Context, menuID, submenuID, title, description, price string) (*model.Dish, error) {
	args := m.Called(ctx, menuID, submenuID, title, description, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) List(ctx context.Context, submenuID string, limit, skip int) ([]model.Dish, error) {
	args := m.Called(ctx, submenuID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockDishService) Get(ctx context.Context, submenuID, id string) (*model.Dish, error) {
	args := m.Called(ctx, submenuID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) Update(ctx context.Context, submenuID, id, title, description, price string) (*model.Dish, error) {
	args := m.Called(ctx, submenuID, id, title, description, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) Delete(ctx context.Context, submenuID, id string) error {
	args := m.Called(ctx, submenuID, id)
	return args.Error(0)
}

func (m *MockDishService) AttachImage(ctx context.Context, submenuID, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Dish, error) {
	args := m.Called(ctx, submenuID, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockDishService) ImageURL(ctx context.Context, submenuID, id string) (string, error) {
	args := m.Called(ctx, submenuID, id)
	return args.String(0), args.Error(1)
}
