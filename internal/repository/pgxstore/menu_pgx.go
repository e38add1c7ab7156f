// Package pgxstore implements the repository interfaces on a native pgx
// connection pool. It is the access path of the asynchronous entry point:
// the same SQL as the postgres package, but every call suspends on its
// context inside the driver instead of blocking through database/sql.
package pgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"menuapi/internal/model"
	"menuapi/internal/repository"
)

// DB is the subset of *pgxpool.Pool the stores use. Depending on it instead
// of the pool type keeps the error-mapping paths testable without a live pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// MenuPgx is a pgx pool implementation of repository.MenuRepository.
type MenuPgx struct {
	pool DB
}

// NewMenuPgx creates a new MenuPgx repository.
func NewMenuPgx(pool DB) *MenuPgx {
	return &MenuPgx{pool: pool}
}

var _ repository.MenuRepository = (*MenuPgx)(nil)

func (r *MenuPgx) Create(ctx context.Context, m *model.Menu) (*model.Menu, error) {
	const q = `
		INSERT INTO menus (id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description
	`
	var out model.Menu
	err := r.pool.QueryRow(ctx, q, m.ID, m.Title, m.Description, m.CreatedAt).
		Scan(&out.ID, &out.Title, &out.Description)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MenuPgx) FindByID(ctx context.Context, id string) (*model.Menu, error) {
	const q = `
		SELECT m.id, m.title, m.description,
			(SELECT COUNT(*) FROM submenus s WHERE s.menu_id = m.id) AS submenus_count,
			(SELECT COUNT(*) FROM dishes d JOIN submenus s ON d.submenu_id = s.id WHERE s.menu_id = m.id) AS dishes_count
		FROM menus m
		WHERE m.id = $1
	`
	var m model.Menu
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&m.ID, &m.Title, &m.Description, &m.SubMenusCount, &m.DishesCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MenuPgx) List(ctx context.Context, pq repository.PageQuery) ([]model.Menu, error) {
	const q = `
		SELECT m.id, m.title, m.description,
			(SELECT COUNT(*) FROM submenus s WHERE s.menu_id = m.id) AS submenus_count,
			(SELECT COUNT(*) FROM dishes d JOIN submenus s ON d.submenu_id = s.id WHERE s.menu_id = m.id) AS dishes_count
		FROM menus m
		ORDER BY m.created_at, m.id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, q, pq.Limit, pq.Offset)
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

func (r *MenuPgx) Update(ctx context.Context, m *model.Menu) (*model.Menu, error) {
	const q = `
		UPDATE menus
		SET title = $2, description = $3
		WHERE id = $1
		RETURNING id, title, description
	`
	var out model.Menu
	err := r.pool.QueryRow(ctx, q, m.ID, m.Title, m.Description).
		Scan(&out.ID, &out.Title, &out.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *MenuPgx) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM menus WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
