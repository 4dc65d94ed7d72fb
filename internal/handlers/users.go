package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
)

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// NewUsersHandler returns an HTTP handler listing all users.
// Password hashes are never included in the response.
// @Summary List users
// @Description Returns all registered users without credential material
// @Tags auth
// @Produce json
// @Success 200 {object} models.Response "Users listed"
// @Router /auth/users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeInternalError(w, "Internal server error", err)
			return
		}

		writeJSON(w, http.StatusOK, models.Response{
			Error:   false,
			Message: "Users are listed!",
			Result:  users,
		})
	}
}
