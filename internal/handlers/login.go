package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login. Either username
// or email identifies the account.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// Email
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by username or email and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Access token returned"
// @Failure 400 {object} models.Response "Missing identifier or password"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Failure 404 {object} models.Response "Unknown username"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Username or email and password is required for login!")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCredentialsRequired):
				writeError(w, http.StatusBadRequest, "Username or email and password is required for login!")
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusNotFound, "Invalid Username or email!")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Unauthorized - Invalid credentials!")
			default:
				writeInternalError(w, "Internal server error", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Error:       false,
			Message:     "Logined successfully!",
			Username:    user.Username,
			AccessToken: token,
		})
	}
}
