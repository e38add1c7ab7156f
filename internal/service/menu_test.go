package service

import (
	"context"
	"errors"
	"testing"

	"menuapi/internal/model"
	"menuapi/internal/repository"
	"menuapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		setupMocks  func(repo *mocks.MockMenuRepository)
		wantErr     error
	}{
		{
			name:        "creates with generated id",
			title:       "Drinks",
			description: "Cold and hot",
			setupMocks: func(repo *mocks.MockMenuRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Menu")).
					Return(&model.Menu{ID: "generated", Title: "Drinks", Description: "Cold and hot"}, nil)
			},
		},
		{
			name:       "rejects empty title",
			title:      "",
			setupMocks: func(repo *mocks.MockMenuRepository) {},
			wantErr:    ErrTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMenuRepository)
			tt.setupMocks(repo)

			svc := NewMenuService(repo)
			m, err := svc.Create(context.Background(), tt.title, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.title, m.Title)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_List(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		skip       int
		wantQuery  repository.PageQuery
	}{
		{name: "passes limit and skip through", limit: 5, skip: 20, wantQuery: repository.PageQuery{Limit: 5, Offset: 20}},
		{name: "defaults zero limit to 10", limit: 0, skip: 0, wantQuery: repository.PageQuery{Limit: 10, Offset: 0}},
		{name: "clamps negative skip", limit: 10, skip: -3, wantQuery: repository.PageQuery{Limit: 10, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMenuRepository)
			repo.On("List", mock.Anything, tt.wantQuery).Return([]model.Menu{}, nil)

			svc := NewMenuService(repo)
			items, err := svc.List(context.Background(), tt.limit, tt.skip)

			assert.NoError(t, err)
			assert.NotNil(t, items)
			repo.AssertExpectations(t)
		})
	}
}

func TestMenuService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("FindByID", mock.Anything, "menu-id").
			Return(&model.Menu{ID: "menu-id", Title: "Drinks", SubMenusCount: 2, DishesCount: 5}, nil)

		svc := NewMenuService(repo)
		m, err := svc.Get(context.Background(), "menu-id")

		assert.NoError(t, err)
		assert.Equal(t, 2, m.SubMenusCount)
		repo.AssertExpectations(t)
	})

	t.Run("not found maps to ErrMenuNotFound", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		svc := NewMenuService(repo)
		m, err := svc.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrMenuNotFound)
		assert.Nil(t, m)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewMenuService(new(mocks.MockMenuRepository))
		_, err := svc.Get(context.Background(), "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := new(mocks.MockMenuRepository)
		repo.On("FindByID", mock.Anything, "menu-id").Return(nil, dbErr)

		svc := NewMenuService(repo)
		_, err := svc.Get(context.Background(), "menu-id")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMenuService_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("Update", mock.Anything, &model.Menu{ID: "menu-id", Title: "New", Description: "d"}).
			Return(&model.Menu{ID: "menu-id", Title: "New", Description: "d"}, nil)

		svc := NewMenuService(repo)
		m, err := svc.Update(context.Background(), "menu-id", "New", "d")

		assert.NoError(t, err)
		assert.Equal(t, "New", m.Title)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Menu")).Return(nil, repository.ErrNotFound)

		svc := NewMenuService(repo)
		_, err := svc.Update(context.Background(), "missing", "New", "")

		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		svc := NewMenuService(new(mocks.MockMenuRepository))
		_, err := svc.Update(context.Background(), "menu-id", "", "")
		assert.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestMenuService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("Delete", mock.Anything, "menu-id").Return(nil)

		svc := NewMenuService(repo)
		assert.NoError(t, svc.Delete(context.Background(), "menu-id"))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockMenuRepository)
		repo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

		svc := NewMenuService(repo)
		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrMenuNotFound)
	})
}
