package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// SubMenuService defines the use cases for handling submenus of a menu.
type SubMenuService interface {
	// Create stores a new submenu under the given menu. The parent menu must
	// exist, and the title may not already live under a different menu.
	Create(ctx context.Context, menuID, title, description string) (*model.SubMenu, error)

	List(ctx context.Context, menuID string, limit, skip int) ([]model.SubMenu, error)

	Get(ctx context.Context, menuID, id string) (*model.SubMenu, error)

	Update(ctx context.Context, menuID, id, title, description string) (*model.SubMenu, error)

	// Delete removes a submenu; its dishes go with it via the schema cascade.
	Delete(ctx context.Context, menuID, id string) error
}

type subMenuService struct {
	menus repository.MenuRepository
	repo  repository.SubMenuRepository
}

// NewSubMenuService constructs a new SubMenuService.
func NewSubMenuService(menus repository.MenuRepository, repo repository.SubMenuRepository) SubMenuService {
	return &subMenuService{menus: menus, repo: repo}
}

func (s *subMenuService) Create(ctx context.Context, menuID, title, description string) (*model.SubMenu, error) {
	if menuID == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.menus.FindByID(ctx, menuID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	owned, err := s.repo.TitleOwnedElsewhere(ctx, menuID, title)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrSubMenuConflict
	}

	sm := &model.SubMenu{
		ID:          uuid.New().String(),
		MenuID:      menuID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, sm)
}

func (s *subMenuService) List(ctx context.Context, menuID string, limit, skip int) ([]model.SubMenu, error) {
	if menuID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.ListByMenu(ctx, menuID, repository.PageQuery{Limit: limit, Offset: skip})
}

func (s *subMenuService) Get(ctx context.Context, menuID, id string) (*model.SubMenu, error) {
	if menuID == "" || id == "" {
		return nil, ErrIDRequired
	}
	sm, err := s.repo.FindByID(ctx, menuID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubMenuNotFound
		}
		return nil, err
	}
	return sm, nil
}

func (s *subMenuService) Update(ctx context.Context, menuID, id, title, description string) (*model.SubMenu, error) {
	if menuID == "" || id == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	sm, err := s.repo.Update(ctx, &model.SubMenu{
		ID:          id,
		MenuID:      menuID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubMenuNotFound
		}
		return nil, err
	}
	return sm, nil
}

func (s *subMenuService) Delete(ctx context.Context, menuID, id string) error {
	if menuID == "" || id == "" {
		return ErrIDRequired
	}
	// Photo objects of cascade-deleted dishes stay in the bucket; only a
	// dish-level delete removes its object.
	if err := s.repo.Delete(ctx, menuID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubMenuNotFound
		}
		return err
	}
	return nil
}
