package model

import "time"

// SubMenu groups dishes under a single menu. A submenu belongs to exactly
// one menu; its title may not appear under any other menu.
type SubMenu struct {
	ID          string    `json:"id"`
	MenuID      string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`

	DishesCount int `json:"dishes_count"`
}
