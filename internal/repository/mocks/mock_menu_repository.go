package mocks

import (
	"context"

	"menuapi/internal/model"
	"menuapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct {
	mock.Mock
}

var _ repository.MenuRepository = (*MockMenuRepository)(nil)

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) (*model.Menu, error) {
	args := m.Called(ctx, menu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id string) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Menu, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *model.Menu) (*model.Menu, error) {
	args := m.Called(ctx, menu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
