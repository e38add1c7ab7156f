package postgres

import (
	"context"
	"database/sql"
	"errors"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// DishPostgres is a PostgreSQL implementation of repository.DishRepository.
// Prices are bound as ::numeric and selected as ::text so the decimal string
// round-trips without a float conversion.
type DishPostgres struct {
	db *sql.DB
}

// NewDishPostgres creates a new DishPostgres repository.
func NewDishPostgres(db *sql.DB) *DishPostgres {
	return &DishPostgres{db: db}
}

var _ repository.DishRepository = (*DishPostgres)(nil)

// Create inserts a new dish row and returns the stored record.
func (r *DishPostgres) Create(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	const q = `
		INSERT INTO dishes (id, submenu_id, title, description, price, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6)
		RETURNING id, submenu_id, title, description, price::text
	`
	row := r.db.QueryRowContext(ctx, q, d.ID, d.SubMenuID, d.Title, d.Description, d.Price, d.CreatedAt)
	var out model.Dish
	if err := row.Scan(&out.ID, &out.SubMenuID, &out.Title, &out.Description, &out.Price); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a dish of the given submenu.
func (r *DishPostgres) FindByID(ctx context.Context, submenuID, id string) (*model.Dish, error) {
	const q = `
		SELECT id, submenu_id, title, description, price::text, COALESCE(image_path, '')
		FROM dishes
		WHERE submenu_id = $1 AND id = $2
	`
	row := r.db.QueryRowContext(ctx, q, submenuID, id)
	var d model.Dish
	if err := row.Scan(&d.ID, &d.SubMenuID, &d.Title, &d.Description, &d.Price, &d.ImagePath); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListBySubMenu returns dishes of a submenu using LIMIT/OFFSET pagination.
func (r *DishPostgres) ListBySubMenu(ctx context.Context, submenuID string, pq repository.PageQuery) ([]model.Dish, error) {
	const q = `
		SELECT id, submenu_id, title, description, price::text, COALESCE(image_path, '')
		FROM dishes
		WHERE submenu_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, q, submenuID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Dish, 0)
	for rows.Next() {
		var d model.Dish
		if err := rows.Scan(&d.ID, &d.SubMenuID, &d.Title, &d.Description, &d.Price, &d.ImagePath); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites title, description and price of an existing dish.
func (r *DishPostgres) Update(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	const q = `
		UPDATE dishes
		SET title = $3, description = $4, price = $5::numeric
		WHERE submenu_id = $1 AND id = $2
		RETURNING id, submenu_id, title, description, price::text
	`
	row := r.db.QueryRowContext(ctx, q, d.SubMenuID, d.ID, d.Title, d.Description, d.Price)
	var out model.Dish
	if err := row.Scan(&out.ID, &out.SubMenuID, &out.Title, &out.Description, &out.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes a dish of the given submenu.
func (r *DishPostgres) Delete(ctx context.Context, submenuID, id string) error {
	const q = `DELETE FROM dishes WHERE submenu_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, submenuID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// TitleOwnedElsewhere reports whether the title exists under another submenu.
func (r *DishPostgres) TitleOwnedElsewhere(ctx context.Context, submenuID, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM dishes WHERE submenu_id <> $1 AND title = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, submenuID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SetImagePath records the object storage key of the dish photo.
func (r *DishPostgres) SetImagePath(ctx context.Context, id, path string) error {
	const q = `UPDATE dishes SET image_path = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, path)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
