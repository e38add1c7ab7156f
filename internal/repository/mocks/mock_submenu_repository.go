package mocks

import (
	"context"

	"menuapi/internal/model"
	"menuapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSubMenuRepository struct {
	mock.Mock
}

var _ repository.SubMenuRepository = (*MockSubMenuRepository)(nil)

func (m *MockSubMenuRepository) Create(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	args := m.Called(ctx, sm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuRepository) FindByID(ctx context.Context, menuID, id string) (*model.SubMenu, error) {
	args := m.Called(ctx, menuID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuRepository) ListByMenu(ctx context.Context, menuID string, pq repository.PageQuery) ([]model.SubMenu, error) {
	args := m.Called(ctx, menuID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubMenu), args.Error(1)
}

func (m *MockSubMenuRepository) Update(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	args := m.Called(ctx, sm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuRepository) Delete(ctx context.Context, menuID, id string) error {
	args := m.Called(ctx, menuID, id)
	return args.Error(0)
}

func (m *MockSubMenuRepository) TitleOwnedElsewhere(ctx context.Context, menuID, title string) (bool, error) {
	args := m.Called(ctx, menuID, title)
	return args.Bool(0), args.Error(1)
}
