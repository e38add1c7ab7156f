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

func TestSubMenuPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	sm := &model.SubMenu{
		ID:          "submenu-id",
		MenuID:      "menu-id",
		Title:       "Hot drinks",
		Description: "Tea and coffee",
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows([]string{"id", "menu_id", "title", "description"}).
		AddRow(sm.ID, sm.MenuID, sm.Title, sm.Description)

	mock.ExpectQuery("INSERT INTO submenus").
		WithArgs(sm.ID, sm.MenuID, sm.Title, sm.Description, sm.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, sm)

	assert.NoError(t, err)
	assert.Equal(t, sm.MenuID, result.MenuID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubMenuPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	t.Run("found with dish count", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "menu_id", "title", "description", "dishes_count"}).
			AddRow("submenu-id", "menu-id", "Hot drinks", "", 4)

		mock.ExpectQuery("SELECT (.+) FROM submenus s").
			WithArgs("menu-id", "submenu-id").
			WillReturnRows(rows)

		sm, err := repo.FindByID(ctx, "menu-id", "submenu-id")

		assert.NoError(t, err)
		assert.Equal(t, 4, sm.DishesCount)
	})

	t.Run("wrong parent menu", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM submenus s").
			WithArgs("other-menu", "submenu-id").
			WillReturnError(sql.ErrNoRows)

		sm, err := repo.FindByID(ctx, "other-menu", "submenu-id")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, sm)
	})
}

func TestSubMenuPostgres_ListByMenu(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "menu_id", "title", "description", "dishes_count"}).
		AddRow("submenu-1", "menu-id", "Hot drinks", "", 2).
		AddRow("submenu-2", "menu-id", "Cold drinks", "", 0)

	mock.ExpectQuery("SELECT (.+) FROM submenus s").
		WithArgs("menu-id", 10, 0).
		WillReturnRows(rows)

	items, err := repo.ListByMenu(ctx, "menu-id", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubMenuPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "menu_id", "title", "description"}).
		AddRow("submenu-id", "menu-id", "Renamed", "")

	mock.ExpectQuery("UPDATE submenus").
		WithArgs("menu-id", "submenu-id", "Renamed", "").
		WillReturnRows(rows)

	sm, err := repo.Update(ctx, &model.SubMenu{ID: "submenu-id", MenuID: "menu-id", Title: "Renamed"})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", sm.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubMenuPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM submenus").
			WithArgs("menu-id", "submenu-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "menu-id", "submenu-id"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM submenus").
			WithArgs("menu-id", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "menu-id", "missing"), repository.ErrNotFound)
	})
}

func TestSubMenuPostgres_TitleOwnedElsewhere(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubMenuPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("menu-id", "Hot drinks").
		WillReturnRows(rows)

	owned, err := repo.TitleOwnedElsewhere(ctx, "menu-id", "Hot drinks")

	assert.NoError(t, err)
	assert.True(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
