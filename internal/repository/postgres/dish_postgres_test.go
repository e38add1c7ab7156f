package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"menuapi/internal/model"
	"menuapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDishPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	d := &model.Dish{
		ID:          "dish-id",
		SubMenuID:   "submenu-id",
		Title:       "Espresso",
		Description: "Double shot",
		Price:       "2.50",
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows([]string{"id", "submenu_id", "title", "description", "price"}).
		AddRow(d.ID, d.SubMenuID, d.Title, d.Description, "2.50")

	mock.ExpectQuery("INSERT INTO dishes").
		WithArgs(d.ID, d.SubMenuID, d.Title, d.Description, d.Price, d.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, d)

	assert.NoError(t, err)
	assert.Equal(t, "2.50", result.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDishPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "submenu_id", "title", "description", "price", "image_path"}).
			AddRow("dish-id", "submenu-id", "Espresso", "", "2.50", "dishes/dish-id.jpg")

		mock.ExpectQuery("SELECT (.+) FROM dishes").
			WithArgs("submenu-id", "dish-id").
			WillReturnRows(rows)

		d, err := repo.FindByID(ctx, "submenu-id", "dish-id")

		assert.NoError(t, err)
		assert.Equal(t, "2.50", d.Price)
		assert.Equal(t, "dishes/dish-id.jpg", d.ImagePath)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM dishes").
			WithArgs("submenu-id", "missing").
			WillReturnError(sql.ErrNoRows)

		d, err := repo.FindByID(ctx, "submenu-id", "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, d)
	})
}

func TestDishPostgres_ListBySubMenu(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "submenu_id", "title", "description", "price", "image_path"}).
		AddRow("dish-1", "submenu-id", "Espresso", "", "2.50", "").
		AddRow("dish-2", "submenu-id", "Latte", "", "3.00", "")

	mock.ExpectQuery("SELECT (.+) FROM dishes").
		WithArgs("submenu-id", 10, 0).
		WillReturnRows(rows)

	items, err := repo.ListBySubMenu(ctx, "submenu-id", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "3.00", items[1].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDishPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "submenu_id", "title", "description", "price"}).
		AddRow("dish-id", "submenu-id", "Espresso", "", "2.80")

	mock.ExpectQuery("UPDATE dishes").
		WithArgs("submenu-id", "dish-id", "Espresso", "", "2.80").
		WillReturnRows(rows)

	d, err := repo.Update(ctx, &model.Dish{ID: "dish-id", SubMenuID: "submenu-id", Title: "Espresso", Price: "2.80"})

	assert.NoError(t, err)
	assert.Equal(t, "2.80", d.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDishPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM dishes").
			WithArgs("submenu-id", "dish-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "submenu-id", "dish-id"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM dishes").
			WithArgs("submenu-id", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "submenu-id", "missing"), repository.ErrNotFound)
	})
}

func TestDishPostgres_SetImagePath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDishPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE dishes SET image_path").
			WithArgs("dish-id", "dishes/dish-id.jpg").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetImagePath(ctx, "dish-id", "dishes/dish-id.jpg"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE dishes SET image_path").
			WithArgs("missing", "dishes/missing.jpg").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SetImagePath(ctx, "missing", "dishes/missing.jpg"), repository.ErrNotFound)
	})
}
