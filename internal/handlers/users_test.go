package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			ListUsers(gomock.Any()).
			Return([]models.UserDB{
				{UserID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash"},
				{UserID: uuid.New(), Username: "bob", Email: "bob@example.com"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
		rr := httptest.NewRecorder()
		NewUsersHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Error)
		assert.Equal(t, "Users are listed!", resp.Message)

		// Password hashes must never leak into the listing.
		assert.NotContains(t, rr.Body.String(), "hash")

		users, ok := resp.Result.([]interface{})
		assert.True(t, ok)
		assert.Len(t, users, 2)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
		rr := httptest.NewRecorder()
		NewUsersHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp models.Response
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Error)
		assert.Equal(t, "database failure", resp.Stack)
	})
}
