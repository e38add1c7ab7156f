package pgxstore

import (
	"context"
	"errors"
	"testing"

	"menuapi/internal/model"
	"menuapi/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// stubRow feeds Scan from a fixed value list, or fails with err. It stands in
// for the driver so the no-rows translation can be exercised without a pool.
type stubRow struct {
	err  error
	vals []any
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if i >= len(r.vals) {
			break
		}
		switch p := d.(type) {
		case *string:
			*p = r.vals[i].(string)
		case *int:
			*p = r.vals[i].(int)
		case *bool:
			*p = r.vals[i].(bool)
		}
	}
	return nil
}

type stubDB struct {
	row      stubRow
	tag      pgconn.CommandTag
	execErr  error
	queryErr error
}

func (s stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, s.queryErr
}

func (s stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.row
}

func (s stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.tag, s.execErr
}

func TestMenuPgx_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with counts", func(t *testing.T) {
		repo := NewMenuPgx(stubDB{row: stubRow{vals: []any{"menu-id", "Drinks", "Cold and hot", 2, 5}}})

		m, err := repo.FindByID(ctx, "menu-id")

		assert.NoError(t, err)
		assert.Equal(t, "Drinks", m.Title)
		assert.Equal(t, 2, m.SubMenusCount)
		assert.Equal(t, 5, m.DishesCount)
	})

	t.Run("no rows maps to ErrNotFound", func(t *testing.T) {
		repo := NewMenuPgx(stubDB{row: stubRow{err: pgx.ErrNoRows}})

		m, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, m)
	})

	t.Run("driver error passes through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := NewMenuPgx(stubDB{row: stubRow{err: dbErr}})

		_, err := repo.FindByID(ctx, "menu-id")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMenuPgx_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("no rows maps to ErrNotFound", func(t *testing.T) {
		repo := NewMenuPgx(stubDB{row: stubRow{err: pgx.ErrNoRows}})

		m, err := repo.Update(ctx, &model.Menu{ID: "missing", Title: "t"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, m)
	})
}

func TestMenuPgx_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		repo := NewMenuPgx(stubDB{tag: pgconn.NewCommandTag("DELETE 1")})

		assert.NoError(t, repo.Delete(ctx, "menu-id"))
	})

	t.Run("zero rows affected maps to ErrNotFound", func(t *testing.T) {
		repo := NewMenuPgx(stubDB{tag: pgconn.NewCommandTag("DELETE 0")})

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)
	})

	t.Run("exec error passes through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := NewMenuPgx(stubDB{execErr: dbErr})

		assert.ErrorIs(t, repo.Delete(ctx, "menu-id"), dbErr)
	})
}

func TestMenuPgx_List_QueryError(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := NewMenuPgx(stubDB{queryErr: dbErr})

	_, err := repo.List(context.Background(), repository.PageQuery{Limit: 10})

	assert.ErrorIs(t, err, dbErr)
}
