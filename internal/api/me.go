package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
)

// registerMeRoutes registers the current-user route on r.
func registerMeRoutes(r chi.Router) {
	r.Get("/me", getMe)
}

// getMe returns the caller's profile and role.
// GET /api/v1/me
//
// @Summary      Current user
// @Description  Returns the caller's profile, including the resolved role.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me [get]
func getMe(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}
	writeJSON(w, http.StatusOK, &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	})
}
