package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return sqlxDB, mock, func() { db.Close() }
}

func categoryRows(categoryID uuid.UUID, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"category_id", "name", "created_at", "updated_at"}).
		AddRow(categoryID, name, now, now)
}

func TestCategoryReadRepository_GetByID(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryReadRepository(db)
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
			WithArgs(categoryID).
			WillReturnRows(categoryRows(categoryID, "tech"))

		category, err := repo.GetByID(ctx, categoryID)
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, "tech", category.Name)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
			WithArgs(categoryID).
			WillReturnError(sql.ErrNoRows)

		category, err := repo.GetByID(ctx, categoryID)
		assert.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
			WithArgs(categoryID).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetByID(ctx, categoryID)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryReadRepository_GetByName(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryReadRepository(db)
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
			WithArgs("tech").
			WillReturnRows(categoryRows(categoryID, "tech"))

		category, err := repo.GetByName(ctx, "tech")
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, categoryID, category.CategoryID)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		category, err := repo.GetByName(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, category)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryReadRepository_List(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"category_id", "name", "created_at", "updated_at"}).
		AddRow(uuid.New(), "tech", now, now).
		AddRow(uuid.New(), "science", now, now)

	mock.ExpectQuery("SELECT category_id, name, created_at, updated_at").
		WillReturnRows(rows)

	categories, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "tech", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryWriteRepository_Save(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryWriteRepository(db)
	ctx := context.Background()
	categoryID := uuid.New()

	mock.ExpectQuery("INSERT INTO blog_categories").
		WithArgs("tech").
		WillReturnRows(categoryRows(categoryID, "tech"))

	category, err := repo.Save(ctx, "tech")
	assert.NoError(t, err)
	assert.Equal(t, categoryID, category.CategoryID)
	assert.Equal(t, "tech", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryWriteRepository_Update(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryWriteRepository(db)
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery("UPDATE blog_categories").
			WithArgs(categoryID, "science").
			WillReturnRows(categoryRows(categoryID, "science"))

		category, err := repo.Update(ctx, categoryID, "science")
		assert.NoError(t, err)
		assert.Equal(t, "science", category.Name)
	})

	t.Run("missing row returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("UPDATE blog_categories").
			WithArgs(categoryID, "science").
			WillReturnError(sql.ErrNoRows)

		category, err := repo.Update(ctx, categoryID, "science")
		assert.NoError(t, err)
		assert.Nil(t, category)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryWriteRepository_Delete(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()

	repo := NewCategoryWriteRepository(db)
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blog_categories").
			WithArgs(categoryID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rowsAffected, err := repo.Delete(ctx, categoryID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rowsAffected)
	})

	t.Run("missing row reports zero rows", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blog_categories").
			WithArgs(categoryID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rowsAffected, err := repo.Delete(ctx, categoryID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rowsAffected)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
