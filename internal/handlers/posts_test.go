package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/jwt"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPostCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	categoryID := uuid.New()

	// The create handler reads the caller identity from the context, so the
	// tests run it behind the same middleware the router uses.
	newHandler := func(svc PostCreator) http.Handler {
		tokener := middlewares.NewMockTokener(ctrl)
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
		tokener.EXPECT().GetClaims(gomock.Any(), "token123").Return(&jwt.Claims{
			UserID:   callerID,
			Username: "john",
		}, nil)
		return middlewares.AuthMiddleware(tokener)(NewPostCreateHandler(svc))
	}

	doRequest := func(h http.Handler, body PostRequest) *httptest.ResponseRecorder {
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(bodyBytes))
		req.Header.Set("Authorization", "Bearer token123")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	t.Run("success assigns the caller as owner", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), callerID, categoryID, "hello", "world").
			Return(&models.PostDB{PostID: uuid.New(), UserID: callerID, CategoryID: categoryID, Title: "hello", Content: "world"}, nil)

		rr := doRequest(newHandler(mockSvc), PostRequest{CategoryID: categoryID.String(), Title: "hello", Content: "world"})

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "A new blog post is created!", resp.Message)

		result, ok := resp.Result.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, callerID.String(), result["userId"])
	})

	t.Run("missing category id", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)

		rr := doRequest(newHandler(mockSvc), PostRequest{Title: "hello", Content: "world"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "All fields are mandatory!", resp.Message)
	})

	t.Run("malformed category id resolves to not found", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)

		rr := doRequest(newHandler(mockSvc), PostRequest{CategoryID: "not-a-uuid", Title: "hello", Content: "world"})

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Category not Found!", resp.Message)
	})

	t.Run("unknown category", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), callerID, categoryID, "hello", "world").
			Return(nil, services.ErrCategoryNotFound)

		rr := doRequest(newHandler(mockSvc), PostRequest{CategoryID: categoryID.String(), Title: "hello", Content: "world"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("write failure", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), callerID, categoryID, "hello", "world").
			Return(nil, errors.New("database failure"))

		rr := doRequest(newHandler(mockSvc), PostRequest{CategoryID: categoryID.String(), Title: "hello", Content: "world"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "New blog could not be created!", resp.Message)
		assert.Equal(t, "database failure", resp.Stack)
	})

	t.Run("no claims in context", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)

		bodyBytes, _ := json.Marshal(PostRequest{CategoryID: categoryID.String(), Title: "hello", Content: "world"})
		req := httptest.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewPostCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPostListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.PostDB{{PostID: uuid.New(), Title: "hello"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		rr := httptest.NewRecorder()
		NewPostListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Blogs are listed!", resp.Message)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		rr := httptest.NewRecorder()
		NewPostListHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPostReadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()

	newRouter := func(svc PostGetter) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/blogs/{id}", NewPostReadHandler(svc))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPostGetter(ctrl)
		mockSvc.EXPECT().
			GetOne(gomock.Any(), postID).
			Return(&models.PostDB{PostID: postID, Title: "hello"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/blogs/"+postID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Selected blog is here!", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockPostGetter(ctrl)
		mockSvc.EXPECT().GetOne(gomock.Any(), postID).Return(nil, services.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodGet, "/blogs/"+postID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Blog not Found!", resp.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockPostGetter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/blogs/not-a-uuid", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPostUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()
	categoryID := uuid.New()

	newRouter := func(svc PostUpdater) *chi.Mux {
		r := chi.NewRouter()
		r.Put("/blogs/{id}", NewPostUpdateHandler(svc))
		return r
	}

	doRequest := func(svc PostUpdater, id string, body PostRequest) *httptest.ResponseRecorder {
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPut, "/blogs/"+id, bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)
		return rr
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPostUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), postID, categoryID, "new", "text").
			Return(&models.PostDB{PostID: postID, CategoryID: categoryID, Title: "new", Content: "text"}, nil)

		rr := doRequest(mockSvc, postID.String(), PostRequest{CategoryID: categoryID.String(), Title: "new", Content: "text"})

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Selected blog is updated!", resp.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc := NewMockPostUpdater(ctrl)

		rr := doRequest(mockSvc, postID.String(), PostRequest{Title: "new", Content: "text"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("post not found", func(t *testing.T) {
		mockSvc := NewMockPostUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), postID, categoryID, "new", "text").
			Return(nil, services.ErrPostNotFound)

		rr := doRequest(mockSvc, postID.String(), PostRequest{CategoryID: categoryID.String(), Title: "new", Content: "text"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("category not found", func(t *testing.T) {
		mockSvc := NewMockPostUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), postID, categoryID, "new", "text").
			Return(nil, services.ErrCategoryNotFound)

		rr := doRequest(mockSvc, postID.String(), PostRequest{CategoryID: categoryID.String(), Title: "new", Content: "text"})

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Category not Found!", resp.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockPostUpdater(ctrl)

		rr := doRequest(mockSvc, "not-a-uuid", PostRequest{CategoryID: categoryID.String(), Title: "new", Content: "text"})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPostDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postID := uuid.New()

	newRouter := func(svc PostDeleter) *chi.Mux {
		r := chi.NewRouter()
		r.Delete("/blogs/{id}", NewPostDeleteHandler(svc))
		return r
	}

	t.Run("success returns no content", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), postID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/blogs/"+postID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), postID).Return(services.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/blogs/"+postID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("write failure", func(t *testing.T) {
		mockSvc := NewMockPostDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), postID).Return(services.ErrPostWriteFailed)

		req := httptest.NewRequest(http.MethodDelete, "/blogs/"+postID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
