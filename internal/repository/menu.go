// Package repository contains data access layer abstractions.
// Implementations live in subpackages: postgres (database/sql, used by the
// synchronous entry point) and pgxstore (pgx pool, used by the asynchronous one).
package repository

import (
	"context"
	"errors"

	"menuapi/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
// Both backends translate their driver's no-rows error to this sentinel so
// the service layer stays independent of the access path.
var ErrNotFound = errors.New("record not found")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// MenuRepository defines data access for menus using SQL queries only.
// No business logic here, strictly persistence operations.
type MenuRepository interface {
	// Create inserts a new menu row. The caller provides ID and CreatedAt.
	Create(ctx context.Context, m *model.Menu) (*model.Menu, error)

	// FindByID returns a menu with its derived submenu and dish counts.
	FindByID(ctx context.Context, id string) (*model.Menu, error)

	// List returns a page of menus with derived counts.
	List(ctx context.Context, pq PageQuery) ([]model.Menu, error)

	// Update rewrites title and description. Returns ErrNotFound if the row is missing.
	Update(ctx context.Context, m *model.Menu) (*model.Menu, error)

	// Delete removes a menu; submenus and dishes go with it via FK cascade.
	// Returns ErrNotFound if the row is missing.
	Delete(ctx context.Context, id string) error
}

// SubMenuRepository defines data access for submenus scoped by their parent menu.
type SubMenuRepository interface {
	Create(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error)

	// FindByID returns a submenu of the given menu with its dish count.
	FindByID(ctx context.Context, menuID, id string) (*model.SubMenu, error)

	ListByMenu(ctx context.Context, menuID string, pq PageQuery) ([]model.SubMenu, error)

	Update(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error)

	Delete(ctx context.Context, menuID, id string) error

	// TitleOwnedElsewhere reports whether the title already exists under a
	// different menu than menuID.
	TitleOwnedElsewhere(ctx context.Context, menuID, title string) (bool, error)
}

// DishRepository defines data access for dishes scoped by their parent submenu.
type DishRepository interface {
	Create(ctx context.Context, d *model.Dish) (*model.Dish, error)

	FindByID(ctx context.Context, submenuID, id string) (*model.Dish, error)

	ListBySubMenu(ctx context.Context, submenuID string, pq PageQuery) ([]model.Dish, error)

	Update(ctx context.Context, d *model.Dish) (*model.Dish, error)

	Delete(ctx context.Context, submenuID, id string) error

	// TitleOwnedElsewhere reports whether the title already exists under a
	// different submenu than submenuID.
	TitleOwnedElsewhere(ctx context.Context, submenuID, title string) (bool, error)

	// SetImagePath records the object storage key of the dish photo.
	SetImagePath(ctx context.Context, id, path string) error
}
