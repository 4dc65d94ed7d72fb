package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// PostCreator defines the create operation of the post service.
type PostCreator interface {
	Create(ctx context.Context, callerID, categoryID uuid.UUID, title, content string) (*models.PostDB, error)
}

// PostLister defines the list operation of the post service.
type PostLister interface {
	List(ctx context.Context) ([]models.PostDB, error)
}

// PostGetter defines the read-one operation of the post service.
type PostGetter interface {
	GetOne(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
}

// PostUpdater defines the update operation of the post service.
type PostUpdater interface {
	Update(ctx context.Context, postID, categoryID uuid.UUID, title, content string) (*models.PostDB, error)
}

// PostDeleter defines the delete operation of the post service.
type PostDeleter interface {
	Delete(ctx context.Context, postID uuid.UUID) error
}

// PostRequest represents the JSON body for creating or updating a blog post.
// The author is always the authenticated caller, never part of the body.
// swagger:model PostRequest
type PostRequest struct {
	// Category ID
	// required: true
	// example: 6f1d2c3a-0b4e-4a38-9c3f-2d1e5a7b8c90
	CategoryID string `json:"categoryId"`

	// Post title
	// required: true
	// example: My first post
	Title string `json:"title"`

	// Post content
	// required: true
	// example: Hello, world!
	Content string `json:"content"`
}

// parseCategoryID distinguishes a missing categoryId (validation error)
// from one that cannot resolve to a category (not found).
func parseCategoryID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, services.ErrPostFieldsRequired
	}
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, services.ErrCategoryNotFound
	}
	return categoryID, nil
}

// NewPostCreateHandler returns an HTTP handler creating a blog post
// owned by the authenticated caller.
// @Summary Create blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param postRequest body handlers.PostRequest true "Post create request"
// @Success 201 {object} models.Response "Post created"
// @Failure 400 {object} models.Response "Missing fields"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Failure 404 {object} models.Response "Category not found"
// @Failure 500 {object} models.Response "Write failure"
// @Router /blogs [post]
// @Security BearerAuth
func NewPostCreateHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Invalid Token")
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "All fields are mandatory!")
			return
		}

		categoryID, err := parseCategoryID(req.CategoryID)
		if err == nil {
			var post *models.PostDB
			post, err = svc.Create(ctx, claims.UserID, categoryID, req.Title, req.Content)
			if err == nil {
				writeJSON(w, http.StatusCreated, models.Response{
					Error:   false,
					Message: "A new blog post is created!",
					Result:  post,
				})
				return
			}
		}

		switch {
		case errors.Is(err, services.ErrPostFieldsRequired):
			writeError(w, http.StatusBadRequest, "All fields are mandatory!")
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Category not Found!")
		default:
			writeInternalError(w, "New blog could not be created!", err)
		}
	}
}

// NewPostListHandler returns an HTTP handler listing all blog posts.
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Success 200 {object} models.Response "Posts listed"
// @Router /blogs [get]
func NewPostListHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, "Internal server error", err)
			return
		}

		writeJSON(w, http.StatusOK, models.Response{
			Error:   false,
			Message: "Blogs are listed!",
			Result:  posts,
		})
	}
}

// NewPostReadHandler returns an HTTP handler reading one blog post.
// @Summary Read blog post
// @Tags blogs
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Response "Post returned"
// @Failure 404 {object} models.Response "Post not found"
// @Router /blogs/{id} [get]
func NewPostReadHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Blog not Found!")
			return
		}

		post, err := svc.GetOne(r.Context(), postID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, "Blog not Found!")
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.Response{
			Error:   false,
			Message: "Selected blog is here!",
			Result:  post,
		})
	}
}

// NewPostUpdateHandler returns an HTTP handler updating a blog post.
// @Summary Update blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param postRequest body handlers.PostRequest true "Post update request"
// @Success 200 {object} models.Response "Post updated"
// @Failure 400 {object} models.Response "Missing fields"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Failure 404 {object} models.Response "Post or category not found"
// @Failure 500 {object} models.Response "Write failure"
// @Router /blogs/{id} [put]
// @Security BearerAuth
func NewPostUpdateHandler(svc PostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Blog not found!")
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "All fields are mandatory!")
			return
		}

		categoryID, err := parseCategoryID(req.CategoryID)
		if err == nil {
			var post *models.PostDB
			post, err = svc.Update(r.Context(), postID, categoryID, req.Title, req.Content)
			if err == nil {
				writeJSON(w, http.StatusOK, models.Response{
					Error:   false,
					Message: "Selected blog is updated!",
					Result:  post,
				})
				return
			}
		}

		switch {
		case errors.Is(err, services.ErrPostFieldsRequired):
			writeError(w, http.StatusBadRequest, "All fields are mandatory!")
		case errors.Is(err, services.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "Blog not found!")
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Category not Found!")
		default:
			writeInternalError(w, "Blog could not be updated!", err)
		}
	}
}

// NewPostDeleteHandler returns an HTTP handler deleting a blog post.
// @Summary Delete blog post
// @Tags blogs
// @Param id path string true "Post ID"
// @Success 204 "Post deleted"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Failure 404 {object} models.Response "Post not found"
// @Failure 500 {object} models.Response "Delete failure"
// @Router /blogs/{id} [delete]
// @Security BearerAuth
func NewPostDeleteHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Blog not found!")
			return
		}

		if err := svc.Delete(r.Context(), postID); err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				writeError(w, http.StatusNotFound, "Blog not found!")
			case errors.Is(err, services.ErrPostWriteFailed):
				writeInternalError(w, "Blog could not be deleted!", err)
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
