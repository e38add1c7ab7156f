package pgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// DishPgx is a pgx pool implementation of repository.DishRepository.
type DishPgx struct {
	pool DB
}

// NewDishPgx creates a new DishPgx repository.
func NewDishPgx(pool DB) *DishPgx {
	return &DishPgx{pool: pool}
}

var _ repository.DishRepository = (*DishPgx)(nil)

func (r *DishPgx) Create(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	const q = `
		INSERT INTO dishes (id, submenu_id, title, description, price, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6)
		RETURNING id, submenu_id, title, description, price::text
	`
	var out model.Dish
	err := r.pool.QueryRow(ctx, q, d.ID, d.SubMenuID, d.Title, d.Description, d.Price, d.CreatedAt).
		Scan(&out.ID, &out.SubMenuID, &out.Title, &out.Description, &out.Price)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DishPgx) FindByID(ctx context.Context, submenuID, id string) (*model.Dish, error) {
	const q = `
		SELECT id, submenu_id, title, description, price::text, COALESCE(image_path, '')
		FROM dishes
		WHERE submenu_id = $1 AND id = $2
	`
	var d model.Dish
	err := r.pool.QueryRow(ctx, q, submenuID, id).
		Scan(&d.ID, &d.SubMenuID, &d.Title, &d.Description, &d.Price, &d.ImagePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DishPgx) ListBySubMenu(ctx context.Context, submenuID string, pq repository.PageQuery) ([]model.Dish, error) {
	const q = `
		SELECT id, submenu_id, title, description, price::text, COALESCE(image_path, '')
		FROM dishes
		WHERE submenu_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, q, submenuID, pq.Limit, pq.Offset)
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

func (r *DishPgx) Update(ctx context.Context, d *model.Dish) (*model.Dish, error) {
	const q = `
		UPDATE dishes
		SET title = $3, description = $4, price = $5::numeric
		WHERE submenu_id = $1 AND id = $2
		RETURNING id, submenu_id, title, description, price::text
	`
	var out model.Dish
	err := r.pool.QueryRow(ctx, q, d.SubMenuID, d.ID, d.Title, d.Description, d.Price).
		Scan(&out.ID, &out.SubMenuID, &out.Title, &out.Description, &out.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *DishPgx) Delete(ctx context.Context, submenuID, id string) error {
	const q = `DELETE FROM dishes WHERE submenu_id = $1 AND id = $2`
	tag, err := r.pool.Exec(ctx, q, submenuID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DishPgx) TitleOwnedElsewhere(ctx context.Context, submenuID, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM dishes WHERE submenu_id <> $1 AND title = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, submenuID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *DishPgx) SetImagePath(ctx context.Context, id, path string) error {
	const q = `UPDATE dishes SET image_path = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, path)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
