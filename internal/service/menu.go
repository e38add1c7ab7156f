package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// MenuService defines the use cases for handling menus.
type MenuService interface {
	// Create stores a new menu with a generated ID.
	Create(ctx context.Context, title, description string) (*model.Menu, error)

	// List returns menus with derived counts using limit/skip pagination.
	List(ctx context.Context, limit, skip int) ([]model.Menu, error)

	// Get returns a single menu with derived counts by its ID.
	Get(ctx context.Context, id string) (*model.Menu, error)

	// Update rewrites title and description of an existing menu.
	Update(ctx context.Context, id, title, description string) (*model.Menu, error)

	// Delete removes a menu and, through the schema cascade, everything under it.
	Delete(ctx context.Context, id string) error
}

// menuService is a concrete implementation of MenuService.
type menuService struct {
	repo repository.MenuRepository
}

// NewMenuService constructs a new MenuService.
func NewMenuService(repo repository.MenuRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) Create(ctx context.Context, title, description string) (*model.Menu, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	m := &model.Menu{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, m)
}

func (s *menuService) List(ctx context.Context, limit, skip int) ([]model.Menu, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: skip})
}

func (s *menuService) Get(ctx context.Context, id string) (*model.Menu, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *menuService) Update(ctx context.Context, id, title, description string) (*model.Menu, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	m, err := s.repo.Update(ctx, &model.Menu{ID: id, Title: title, Description: description})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMenuNotFound
		}
		return err
	}
	return nil
}
