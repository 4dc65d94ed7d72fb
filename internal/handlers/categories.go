package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// CategoryCreator defines the create operation of the category service.
type CategoryCreator interface {
	Create(ctx context.Context, name string) (*models.CategoryDB, error)
}

// CategoryLister defines the list operation of the category service.
type CategoryLister interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryGetter defines the read-one operation of the category service.
type CategoryGetter interface {
	GetOne(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
}

// CategoryUpdater defines the update operation of the category service.
type CategoryUpdater interface {
	Update(ctx context.Context, categoryID uuid.UUID, name string) (*models.CategoryDB, error)
}

// CategoryDeleter defines the delete operation of the category service.
type CategoryDeleter interface {
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryRequest represents the JSON body for creating or updating a category
// swagger:model CategoryRequest
type CategoryRequest struct {
	// Category name
	// required: true
	// example: tech
	Name string `json:"name"`
}

// NewCategoryCreateHandler returns an HTTP handler creating a category.
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryRequest body handlers.CategoryRequest true "Category create request"
// @Success 201 {object} models.Response "Category created"
// @Failure 400 {object} models.Response "Missing name or duplicate category"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Router /categories [post]
// @Security BearerAuth
func NewCategoryCreateHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Category Name is a required field!")
			return
		}

		category, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNameRequired):
				writeError(w, http.StatusBadRequest, "Category Name is a required field!")
			case errors.Is(err, services.ErrCategoryAlreadyExists):
				writeError(w, http.StatusBadRequest, "Category is exist!")
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.Response{
			Error:   false,
			Message: "New category is created!",
			Result:  category,
		})
	}
}

// NewCategoryListHandler returns an HTTP handler listing all categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} models.Response "Categories listed"
// @Router /categories [get]
func NewCategoryListHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, "Internal server error", err)
			return
		}

		writeJSON(w, http.StatusOK, models.Response{
			Error:   false,
			Message: "Categories are listed!",
			Result:  categories,
		})
	}
}

// NewCategoryReadHandler returns an HTTP handler reading one category.
// @Summary Read category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response "Category returned"
// @Failure 404 {object} models.Response "Category not found"
// @Router /categories/{id} [get]
func NewCategoryReadHandler(svc CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Category not Found!")
			return
		}

		category, err := svc.GetOne(r.Context(), categoryID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "Category not Found!")
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.Response{
			Error:   false,
			Message: "Your Category is here!",
			Result:  category,
		})
	}
}

// NewCategoryUpdateHandler returns an HTTP handler renaming a category.
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param categoryRequest body handlers.CategoryRequest true "Category update request"
// @Success 202 {object} models.Response "Category updated"
// @Failure 400 {object} models.Response "Missing name"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Failure 404 {object} models.Response "Category not found"
// @Failure 500 {object} models.Response "Write failure"
// @Router /categories/{id} [put]
// @Security BearerAuth
func NewCategoryUpdateHandler(svc CategoryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Category not found!")
			return
		}

		var req CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Category Name is required field for update!")
			return
		}

		category, err := svc.Update(r.Context(), categoryID, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNameRequired):
				writeError(w, http.StatusBadRequest, "Category Name is required field for update!")
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "Category not found!")
			case errors.Is(err, services.ErrCategoryWriteFailed):
				writeInternalError(w, "Updating is Failed!", err)
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		writeJSON(w, http.StatusAccepted, models.Response{
			Error:   false,
			Message: "Category is updated!",
			Result:  category,
		})
	}
}

// NewCategoryDeleteHandler returns an HTTP handler deleting a category.
// @Summary Delete category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Failure 404 {object} models.Response "Category not found"
// @Failure 500 {object} models.Response "Delete failure"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func NewCategoryDeleteHandler(svc CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Category not found!")
			return
		}

		if err := svc.Delete(r.Context(), categoryID); err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "Category not found!")
			case errors.Is(err, services.ErrCategoryWriteFailed):
				writeInternalError(w, "Delete is failed!", err)
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
