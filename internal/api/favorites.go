package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// favoritesAPIHandler provides REST handlers for the caller's favorites.
type favoritesAPIHandler struct {
	favorites *store.FavoriteStore
	tools     *store.ToolStore
}

// registerFavoriteRoutes registers favorite routes on r. PUT and DELETE are
// idempotent so retried or reordered toggles converge to the intended state.
func registerFavoriteRoutes(r chi.Router, favorites *store.FavoriteStore, tools *store.ToolStore) {
	h := &favoritesAPIHandler{favorites: favorites, tools: tools}
	r.Get("/me/favorites", h.List)
	r.Get("/me/favorites/ids", h.ListIDs)
	r.Put("/me/favorites/{toolID}", h.Add)
	r.Delete("/me/favorites/{toolID}", h.Remove)
}

// List returns the caller's favorited tools, most recently favorited first.
// GET /api/v1/me/favorites
//
// @Summary      List favorite tools
// @Description  Returns the caller's favorited tools, most recently favorited first.
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Success      200  {object}  ToolListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me/favorites [get]
func (h *favoritesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	tools, err := h.favorites.ListTools(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ToolListResponse{Tools: make([]*ToolResponse, 0, len(tools))}
	for _, t := range tools {
		resp.Tools = append(resp.Tools, toToolResponse(t, true))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListIDs returns only the caller's favorited tool IDs, for cheap membership checks.
// GET /api/v1/me/favorites/ids
//
// @Summary      List favorite tool IDs
// @Description  Returns the IDs of the caller's favorited tools.
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Success      200  {object}  FavoriteIDsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me/favorites/ids [get]
func (h *favoritesAPIHandler) ListIDs(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	ids, err := h.favorites.ListToolIDs(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, &FavoriteIDsResponse{ToolIDs: ids})
}

// Add favorites a tool for the caller. Adding an existing favorite is a no-op.
// PUT /api/v1/me/favorites/{toolID}
//
// @Summary      Favorite a tool
// @Description  Marks a tool as a favorite. Idempotent.
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Param        toolID  path  string  true  "Tool ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me/favorites/{toolID} [put]
func (h *favoritesAPIHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	toolID := chi.URLParam(r, "toolID")
	if _, err := h.tools.GetByID(r.Context(), toolID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if err := h.favorites.Add(r.Context(), user.ID, toolID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.FavoriteTogglesTotal.WithLabelValues("add").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Remove unfavorites a tool for the caller. Removing an absent favorite is a no-op.
// DELETE /api/v1/me/favorites/{toolID}
//
// @Summary      Unfavorite a tool
// @Description  Removes a tool from the caller's favorites. Idempotent.
// @Tags         Favorites
// @Accept       json
// @Produce      json
// @Param        toolID  path  string  true  "Tool ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /me/favorites/{toolID} [delete]
func (h *favoritesAPIHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	toolID := chi.URLParam(r, "toolID")
	if err := h.favorites.Remove(r.Context(), user.ID, toolID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.FavoriteTogglesTotal.WithLabelValues("remove").Inc()
	w.WriteHeader(http.StatusNoContent)
}
