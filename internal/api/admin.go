package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// adminAPIHandler provides REST handlers for admin-only catalog and user management.
type adminAPIHandler struct {
	tools *store.ToolStore
	users *store.UserStore
}

// registerAdminRoutes registers admin routes inside a chi Group with role-check middleware.
func registerAdminRoutes(r chi.Router, tools *store.ToolStore, users *store.UserStore) {
	h := &adminAPIHandler{tools: tools, users: users}

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(requireAdmin)

		admin.Post("/tools", h.CreateTool)
		admin.Put("/tools/{id}", h.UpdateTool)
		admin.Delete("/tools/{id}", h.DeleteTool)
		admin.Get("/users", h.ListUsers)
		admin.Put("/users/{id}/role", h.UpdateRole)
	})
}

// requireAdmin enforces role = admin on all routes in the group. The role is
// checked server-side on every request, never trusted from the client.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
			return
		}
		if !user.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden", "FORBIDDEN")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateTool adds a new entry to the catalog.
// POST /api/v1/admin/tools
//
// @Summary      Create a tool (admin)
// @Description  Adds a new entry to the catalog. Requires admin role.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateToolRequest  true  "Tool to create"
// @Success      201   {object}  ToolResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/tools [post]
func (h *adminAPIHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	var req CreateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	tool := toolFromRequest(req.Name, req.Category, req.Description, req.URL, req.LogoURL, req.Features, req.IsFeatured, req.SortOrder)
	if err := store.ValidateTool(tool); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TOOL")
		return
	}

	created, err := h.tools.Create(r.Context(), tool)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, toToolResponse(created, false))
}

// UpdateTool modifies an existing catalog entry. The ID is immutable.
// PUT /api/v1/admin/tools/{id}
//
// @Summary      Update a tool (admin)
// @Description  Modifies an existing catalog entry. The ID is immutable. Requires admin role.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Tool ID"
// @Param        body  body      UpdateToolRequest  true  "New field values"
// @Success      200   {object}  ToolResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/tools/{id} [put]
func (h *adminAPIHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	var req UpdateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	tool := toolFromRequest(req.Name, req.Category, req.Description, req.URL, req.LogoURL, req.Features, req.IsFeatured, req.SortOrder)
	tool.ID = chi.URLParam(r, "id")
	if err := store.ValidateTool(tool); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TOOL")
		return
	}

	updated, err := h.tools.Update(r.Context(), tool)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(updated, false))
}

// DeleteTool removes a catalog entry along with its favorites and reviews.
// DELETE /api/v1/admin/tools/{id}
//
// @Summary      Delete a tool (admin)
// @Description  Removes a catalog entry. Favorites and reviews of the tool are removed with it. Requires admin role.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Tool ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/tools/{id} [delete]
func (h *adminAPIHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	if err := h.tools.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers returns all users in the system.
// GET /api/v1/admin/users
//
// @Summary      List all users (admin)
// @Description  Returns all users in the system. Requires admin role.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  UserListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/users [get]
func (h *adminAPIHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &UserListResponse{Users: make([]*UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, &UserResponse{
			ID:          u.ID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			Role:        u.Role,
			CreatedAt:   u.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateRole changes a user's role. Accepts only "user" and "admin".
// PUT /api/v1/admin/users/{id}/role
//
// @Summary      Update user role (admin)
// @Description  Changes a user's role. Valid values: "user", "admin". Requires admin role.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      UpdateRoleRequest  true  "New role"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /admin/users/{id}/role [put]
func (h *adminAPIHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.Role != store.RoleUser && req.Role != store.RoleAdmin {
		writeError(w, http.StatusBadRequest, "role must be \"user\" or \"admin\"", "BAD_REQUEST")
		return
	}

	updated, err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, &UserResponse{
		ID:          updated.ID,
		Email:       updated.Email,
		DisplayName: updated.DisplayName,
		Role:        updated.Role,
		CreatedAt:   updated.CreatedAt,
	})
}

func toolFromRequest(name, category, description, url, logoURL string, features []string, isFeatured bool, sortOrder int) *store.Tool {
	t := &store.Tool{
		Name:        name,
		Category:    category,
		Description: description,
		URL:         url,
		Features:    store.Features(features),
		IsFeatured:  isFeatured,
		SortOrder:   sortOrder,
	}
	if logoURL != "" {
		t.LogoURL.String = logoURL
		t.LogoURL.Valid = true
	}
	return t
}
