package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupCatalogMock(t *testing.T) (*PostgresCatalogRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresCatalogRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCatalogList(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(2, "Amulet").
		AddRow(1, "Chalice")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM macguffins ORDER BY name`)).
		WillReturnRows(rows)

	macguffins, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(macguffins) != 2 {
		t.Fatalf("expected 2 macguffins, got %d", len(macguffins))
	}
	if macguffins[0].Name != "Amulet" || macguffins[1].Name != "Chalice" {
		t.Errorf("unexpected order: %+v", macguffins)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogList_Empty(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM macguffins ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	macguffins, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(macguffins) != 0 {
		t.Errorf("expected empty catalog, got %d entries", len(macguffins))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogGetByID_Found(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM macguffins WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Orb"))

	m, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 7 || m.Name != "Orb" {
		t.Errorf("unexpected macguffin: %+v", m)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM macguffins WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogCreate(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO macguffins (name) VALUES ($1) RETURNING id`)).
		WithArgs("Grail").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	m, err := repo.Create(context.Background(), "Grail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 3 || m.Name != "Grail" {
		t.Errorf("unexpected macguffin: %+v", m)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogRename_UnknownID(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	// Zero rows affected is still a success.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE macguffins SET name = $1 WHERE id = $2`)).
		WithArgs("Idol", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Rename(context.Background(), 42, "Idol"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCatalogDelete_TouchesOnlyCatalog(t *testing.T) {
	repo, mock, cleanup := setupCatalogMock(t)
	defer cleanup()

	// A single DELETE against macguffins; the ledger is never touched, so
	// historical find events keep their name snapshots.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM macguffins WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
