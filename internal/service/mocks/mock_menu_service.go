package mocks

import (
	"context"

	"menuapi/internal/model"
	"menuapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMenuService struct {
	mock.Mock
}

var _ service.MenuService = (*MockMenuService)(nil)

func (m *MockMenuService) Create(ctx context.Context, title, description string) (*model.Menu, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) List(ctx context.Context, limit, skip int) ([]model.Menu, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, id string) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id, title, description string) (*model.Menu, error) {
	args := m.Called(ctx, id, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
