package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// Error variables
var (
	ErrCategoryNameRequired  = errors.New("category name is a required field")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryWriteFailed   = errors.New("category write failed")
)

// CategoryReader defines read-only operations for categories.
type CategoryReader interface {
	GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
	GetByName(ctx context.Context, name string) (*models.CategoryDB, error)
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	Save(ctx context.Context, name string) (*models.CategoryDB, error)
	Update(ctx context.Context, categoryID uuid.UUID, name string) (*models.CategoryDB, error)
	Delete(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// CategoryService handles blog category CRUD.
type CategoryService struct {
	reader CategoryReader
	writer CategoryWriter
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(reader CategoryReader, writer CategoryWriter) *CategoryService {
	return &CategoryService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new category with a unique, trimmed name.
func (svc *CategoryService) Create(ctx context.Context, name string) (*models.CategoryDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check category exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("category already exists", "name", name)
		return nil, ErrCategoryAlreadyExists
	}

	category, err := svc.writer.Save(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to save category", "err", err)
		return nil, err
	}

	return category, nil
}

// List returns all categories.
func (svc *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	categories, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}
	return categories, nil
}

// GetOne returns the category with the given id.
func (svc *CategoryService) GetOne(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	category, err := svc.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Update renames an existing category.
func (svc *CategoryService) Update(ctx context.Context, categoryID uuid.UUID, name string) (*models.CategoryDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	existing, err := svc.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrCategoryNotFound
	}

	updated, err := svc.writer.Update(ctx, categoryID, name)
	if err != nil {
		logger.Log.Errorw("failed to update category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if updated == nil {
		// Existed a moment ago but the write reported nothing updated.
		return nil, ErrCategoryWriteFailed
	}

	return updated, nil
}

// Delete removes an existing category.
func (svc *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	existing, err := svc.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", categoryID, "err", err)
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}

	rowsAffected, err := svc.writer.Delete(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to delete category", "category_id", categoryID, "err", err)
		return err
	}
	if rowsAffected < 1 {
		return ErrCategoryWriteFailed
	}

	return nil
}
