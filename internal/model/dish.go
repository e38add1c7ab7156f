package model

import "time"

// Dish is a priced item under a single submenu; its title may not appear
// under any other submenu. Price is carried as a decimal string with two
// fraction digits so both database backends round-trip it losslessly.
type Dish struct {
	ID          string    `json:"id"`
	SubMenuID   string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	ImagePath   string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
}
