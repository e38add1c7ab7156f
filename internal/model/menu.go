package model

import "time"

// Menu is the top-level grouping of the menu hierarchy.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Menu struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`

	// Derived read-side fields, populated by list/get queries only.
	SubMenusCount int `json:"submenus_count"`
	DishesCount   int `json:"dishes_count"`
}
