package pgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// SubMenuPgx is a pgx pool implementation of repository.SubMenuRepository.
type SubMenuPgx struct {
	pool DB
}

// NewSubMenuPgx creates a new SubMenuPgx repository.
func NewSubMenuPgx(pool DB) *SubMenuPgx {
	return &SubMenuPgx{pool: pool}
}

var _ repository.SubMenuRepository = (*SubMenuPgx)(nil)

func (r *SubMenuPgx) Create(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	const q = `
		INSERT INTO submenus (id, menu_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, menu_id, title, description
	`
	var out model.SubMenu
	err := r.pool.QueryRow(ctx, q, sm.ID, sm.MenuID, sm.Title, sm.Description, sm.CreatedAt).
		Scan(&out.ID, &out.MenuID, &out.Title, &out.Description)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SubMenuPgx) FindByID(ctx context.Context, menuID, id string) (*model.SubMenu, error) {
	const q = `
		SELECT s.id, s.menu_id, s.title, s.description,
			(SELECT COUNT(*) FROM dishes d WHERE d.submenu_id = s.id) AS dishes_count
		FROM submenus s
		WHERE s.menu_id = $1 AND s.id = $2
	`
	var sm model.SubMenu
	err := r.pool.QueryRow(ctx, q, menuID, id).
		Scan(&sm.ID, &sm.MenuID, &sm.Title, &sm.Description, &sm.DishesCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sm, nil
}

func (r *SubMenuPgx) ListByMenu(ctx context.Context, menuID string, pq repository.PageQuery) ([]model.SubMenu, error) {
	const q = `
		SELECT s.id, s.menu_id, s.title, s.description,
			(SELECT COUNT(*) FROM dishes d WHERE d.submenu_id = s.id) AS dishes_count
		FROM submenus s
		WHERE s.menu_id = $1
		ORDER BY s.created_at, s.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, q, menuID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SubMenu, 0)
	for rows.Next() {
		var sm model.SubMenu
		if err := rows.Scan(&sm.ID, &sm.MenuID, &sm.Title, &sm.Description, &sm.DishesCount); err != nil {
			return nil, err
		}
		items = append(items, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SubMenuPgx) Update(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	const q = `
		UPDATE submenus
		SET title = $3, description = $4
		WHERE menu_id = $1 AND id = $2
		RETURNING id, menu_id, title, description
	`
	var out model.SubMenu
	err := r.pool.QueryRow(ctx, q, sm.MenuID, sm.ID, sm.Title, sm.Description).
		Scan(&out.ID, &out.MenuID, &out.Title, &out.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *SubMenuPgx) Delete(ctx context.Context, menuID, id string) error {
	const q = `DELETE FROM submenus WHERE menu_id = $1 AND id = $2`
	tag, err := r.pool.Exec(ctx, q, menuID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SubMenuPgx) TitleOwnedElsewhere(ctx context.Context, menuID, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM submenus WHERE menu_id <> $1 AND title = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, menuID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
