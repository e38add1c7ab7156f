package mocks

import (
	"context"

	"menuapi/internal/model"
	"menuapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSubMenuService struct {
	mock.Mock
}

var _ service.SubMenuService = (*MockSubMenuService)(nil)

func (m *MockSubMenuService) Create(ctx context.Context, menuID, title, description string) (*model.SubMenu, error) {
	args := m.Called(ctx, menuID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuService) List(ctx context.Context, menuID string, limit, skip int) ([]model.SubMenu, error) {
	args := m.Called(ctx, menuID, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubMenu), args.Error(1)
}

func (m *MockSubMenuService) Get(ctx context.Context, menuID, id string) (*model.SubMenu, error) {
	args := m.Called(ctx, menuID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuService) Update(ctx context.Context, menuID, id, title, description string) (*model.SubMenu, error) {
	args := m.Called(ctx, menuID, id, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubMenu), args.Error(1)
}

func (m *MockSubMenuService) Delete(ctx context.Context, menuID, id string) error {
	args := m.Called(ctx, menuID, id)
	return args.Error(0)
}
