package handlers

import (
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// NewCurrentUserHandler returns an HTTP handler echoing the identity the
// access control middleware attached to the request context.
// @Summary Current user
// @Description Returns the username and token of the authenticated caller
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthResponse "Current identity"
// @Failure 401 {object} models.Response "Missing or invalid token"
// @Router /auth/current [get]
// @Security BearerAuth
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Invalid Token")
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			Error:       false,
			Message:     "Login is going on!",
			Username:    claims.Username,
			AccessToken: middlewares.GetTokenFromContext(ctx),
		})
	}
}
