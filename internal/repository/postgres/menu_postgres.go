package postgres

import (
	"context"
	"database/sql"
	"errors"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// MenuPostgres is a PostgreSQL implementation of repository.MenuRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MenuPostgres struct {
	db *sql.DB
}

// NewMenuPostgres creates a new MenuPostgres repository.
func NewMenuPostgres(db *sql.DB) *MenuPostgres {
	return &MenuPostgres{db: db}
}

var _ repository.MenuRepository = (*MenuPostgres)(nil)

// Create inserts a new menu row and returns the stored record.
func (r *MenuPostgres) Create(ctx context.Context, m *model.Menu) (*model.Menu, error) {
	const q = `
		INSERT INTO menus (id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description
	`
	row := r.db.QueryRowContext(ctx, q, m.ID, m.Title, m.Description, m.CreatedAt)
	var out model.Menu
	if err := row.Scan(&out.ID, &out.Title, &out.Description); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single menu with its derived counts in one round trip.
func (r *MenuPostgres) FindByID(ctx context.Context, id string) (*model.Menu, error) {
	const q = `
		SELECT m.id, m.title, m.description,
			(SELECT COUNT(*) FROM submenus s WHERE s.menu_id = m.id) AS submenus_count,
			(SELECT COUNT(*) FROM dishes d JOIN submenus s ON d.submenu_id = s.id WHERE s.menu_id = m.id) AS dishes_count
		FROM menus m
		WHERE m.id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var m model.Menu
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.SubMenusCount, &m.DishesCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns menus with derived counts using LIMIT/OFFSET pagination.
func (r *MenuPostgres) List(ctx context.Context, pq repository.PageQuery) ([]model.Menu, error) {
	const q = `
		SELECT m.id, m.title, m.description,
			(SELECT COUNT(*) FROM submenus s WHERE s.menu_id = m.id) AS submenus_count,
			(SELECT COUNT(*) FROM dishes d JOIN submenus s ON d.submenu_id = s.id WHERE s.menu_id = m.id) AS dishes_count
		FROM menus m
		ORDER BY m.created_at, m.id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Menu, 0)
	for rows.Next() {
		var m model.Menu
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.SubMenusCount, &m.DishesCount); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites title and description of an existing menu.
func (r *MenuPostgres) Update(ctx context.Context, m *model.Menu) (*model.Menu, error) {
	const q = `
		UPDATE menus
		SET title = $2, description = $3
		WHERE id = $1
		RETURNING id, title, description
	`
	row := r.db.QueryRowContext(ctx, q, m.ID, m.Title, m.Description)
	var out model.Menu
	if err := row.Scan(&out.ID, &out.Title, &out.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes a menu by ID; the FK cascade drops its submenus and dishes.
func (r *MenuPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM menus WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
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
