package postgres

import (
	"context"
	"database/sql"
	"errors"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// SubMenuPostgres is a PostgreSQL implementation of repository.SubMenuRepository.
type SubMenuPostgres struct {
	db *sql.DB
}

// NewSubMenuPostgres creates a new SubMenuPostgres repository.
func NewSubMenuPostgres(db *sql.DB) *SubMenuPostgres {
	return &SubMenuPostgres{db: db}
}

var _ repository.SubMenuRepository = (*SubMenuPostgres)(nil)

// Create inserts a new submenu row and returns the stored record.
func (r *SubMenuPostgres) Create(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	const q = `
		INSERT INTO submenus (id, menu_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, menu_id, title, description
	`
	row := r.db.QueryRowContext(ctx, q, sm.ID, sm.MenuID, sm.Title, sm.Description, sm.CreatedAt)
	var out model.SubMenu
	if err := row.Scan(&out.ID, &out.MenuID, &out.Title, &out.Description); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a submenu of the given menu with its dish count.
func (r *SubMenuPostgres) FindByID(ctx context.Context, menuID, id string) (*model.SubMenu, error) {
	const q = `
		SELECT s.id, s.menu_id, s.title, s.description,
			(SELECT COUNT(*) FROM dishes d WHERE d.submenu_id = s.id) AS dishes_count
		FROM submenus s
		WHERE s.menu_id = $1 AND s.id = $2
	`
	row := r.db.QueryRowContext(ctx, q, menuID, id)
	var sm model.SubMenu
	if err := row.Scan(&sm.ID, &sm.MenuID, &sm.Title, &sm.Description, &sm.DishesCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sm, nil
}

// ListByMenu returns submenus of a menu with dish counts.
func (r *SubMenuPostgres) ListByMenu(ctx context.Context, menuID string, pq repository.PageQuery) ([]model.SubMenu, error) {
	const q = `
		SELECT s.id, s.menu_id, s.title, s.description,
			(SELECT COUNT(*) FROM dishes d WHERE d.submenu_id = s.id) AS dishes_count
		FROM submenus s
		WHERE s.menu_id = $1
		ORDER BY s.created_at, s.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, q, menuID, pq.Limit, pq.Offset)
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

// Update rewrites title and description of an existing submenu.
func (r *SubMenuPostgres) Update(ctx context.Context, sm *model.SubMenu) (*model.SubMenu, error) {
	const q = `
		UPDATE submenus
		SET title = $3, description = $4
		WHERE menu_id = $1 AND id = $2
		RETURNING id, menu_id, title, description
	`
	row := r.db.QueryRowContext(ctx, q, sm.MenuID, sm.ID, sm.Title, sm.Description)
	var out model.SubMenu
	if err := row.Scan(&out.ID, &out.MenuID, &out.Title, &out.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes a submenu of the given menu; its dishes cascade.
func (r *SubMenuPostgres) Delete(ctx context.Context, menuID, id string) error {
	const q = `DELETE FROM submenus WHERE menu_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, menuID, id)
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

// TitleOwnedElsewhere reports whether the title exists under another menu.
func (r *SubMenuPostgres) TitleOwnedElsewhere(ctx context.Context, menuID, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM submenus WHERE menu_id <> $1 AND title = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, menuID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
