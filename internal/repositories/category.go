package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// CategoryReadRepository handles category read operations.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// GetByID returns the category with the given id, or nil when absent.
func (r *CategoryReadRepository) GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, created_at, updated_at
		FROM blog_categories
		WHERE category_id = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, categoryID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// GetByName returns the category with the given name, or nil when absent.
func (r *CategoryReadRepository) GetByName(ctx context.Context, name string) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, created_at, updated_at
		FROM blog_categories
		WHERE name = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// List returns all categories in insertion order.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, created_at, updated_at
		FROM blog_categories
		ORDER BY created_at
	`

	categories := make([]models.CategoryDB, 0)
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CategoryWriteRepository handles category write operations.
type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

// Save inserts a new category and returns the stored record.
func (r *CategoryWriteRepository) Save(ctx context.Context, name string) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO blog_categories (name, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING category_id, name, created_at, updated_at
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &category, nil
}

// Update renames the category and returns the record after the update.
// Returns nil without error when the category does not exist.
func (r *CategoryWriteRepository) Update(ctx context.Context, categoryID uuid.UUID, name string) (*models.CategoryDB, error) {
	const query = `
		UPDATE blog_categories
		SET name = $2, updated_at = NOW()
		WHERE category_id = $1
		RETURNING category_id, name, created_at, updated_at
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, categoryID, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID, name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// Delete removes the category and returns the number of deleted rows.
func (r *CategoryWriteRepository) Delete(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM blog_categories
		WHERE category_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, categoryID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
