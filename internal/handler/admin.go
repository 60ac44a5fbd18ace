package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// AdminDashboardPage is the template data for the admin overview.
type AdminDashboardPage struct {
	BasePage
	ToolCount int
	UserCount int
}

// AdminToolsPage is the template data for the catalog management table.
type AdminToolsPage struct {
	BasePage
	Tools []*store.Tool
	Flash *Flash
}

// AdminToolFormPage is the template data for the tool create/edit form.
type AdminToolFormPage struct {
	BasePage
	Tool  *store.Tool
	IsNew bool
	Error string
}

// AdminUsersPage is the template data for the user management table.
type AdminUsersPage struct {
	BasePage
	Users []*store.User
}

// AdminHandler provides the catalog and user management screens.
type AdminHandler struct {
	tools *store.ToolStore
	users *store.UserStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ts *store.ToolStore, us *store.UserStore) *AdminHandler {
	return &AdminHandler{tools: ts, users: us}
}

// Dashboard renders the admin overview with catalog counts.
// GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	toolCount, _ := h.tools.Count(r.Context())
	userCount, _ := h.users.Count(r.Context())

	render(w, "admin/dashboard.html", AdminDashboardPage{
		BasePage:  newBasePage(r, user),
		ToolCount: toolCount,
		UserCount: userCount,
	})
}

// Tools renders the catalog management table.
// GET /admin/tools
func (h *AdminHandler) Tools(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	tools, err := h.tools.List(r.Context(), store.ToolQuery{Sort: store.SortNameAsc})
	if err != nil {
		http.Error(w, "could not load tools", http.StatusInternalServerError)
		return
	}

	render(w, "admin/tools.html", AdminToolsPage{
		BasePage: newBasePage(r, user),
		Tools:    tools,
	})
}

// NewTool renders an empty tool form.
// GET /admin/tools/new
func (h *AdminHandler) NewTool(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	render(w, "admin/tool_form.html", AdminToolFormPage{
		BasePage: newBasePage(r, user),
		Tool:     &store.Tool{},
		IsNew:    true,
	})
}

// CreateTool processes the tool creation form.
// POST /admin/tools
func (h *AdminHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	tool, err := toolFromForm(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := store.ValidateTool(tool); err != nil {
		render(w, "admin/tool_form.html", AdminToolFormPage{
			BasePage: newBasePage(r, user),
			Tool:     tool,
			IsNew:    true,
			Error:    err.Error(),
		})
		return
	}

	if _, err := h.tools.Create(r.Context(), tool); err != nil {
		http.Error(w, "could not create tool", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/tools", http.StatusFound)
}

// EditTool renders the tool form pre-filled with an existing entry.
// GET /admin/tools/{id}/edit
func (h *AdminHandler) EditTool(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	tool, err := h.tools.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "could not load tool", http.StatusInternalServerError)
		return
	}

	render(w, "admin/tool_form.html", AdminToolFormPage{
		BasePage: newBasePage(r, user),
		Tool:     tool,
	})
}

// UpdateTool processes the tool edit form. The ID comes from the path and
// cannot be changed.
// PUT /admin/tools/{id}
func (h *AdminHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	tool, err := toolFromForm(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	tool.ID = id
	if err := store.ValidateTool(tool); err != nil {
		render(w, "admin/tool_form.html", AdminToolFormPage{
			BasePage: newBasePage(r, user),
			Tool:     tool,
			Error:    err.Error(),
		})
		return
	}

	if _, err := h.tools.Update(r.Context(), tool); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "could not update tool", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/admin/tools")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/admin/tools", http.StatusFound)
}

// DeleteTool removes a catalog entry along with its favorites and reviews.
// DELETE /admin/tools/{id}
func (h *AdminHandler) DeleteTool(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.tools.Delete(r.Context(), id); err != nil {
		http.Error(w, "could not delete tool", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		// Empty response removes the table row via hx-swap="outerHTML".
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/admin/tools", http.StatusFound)
}

// Users renders the user management table.
// GET /admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	users, err := h.users.ListAll(r.Context())
	if err != nil {
		http.Error(w, "could not load users", http.StatusInternalServerError)
		return
	}

	render(w, "admin/users.html", AdminUsersPage{
		BasePage: newBasePage(r, user),
		Users:    users,
	})
}

// UpdateRole changes a user's role and returns the updated table row.
// PUT /admin/users/{id}/role
func (h *AdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	role := r.FormValue("role")
	if role != store.RoleUser && role != store.RoleAdmin {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}

	updated, err := h.users.UpdateRole(r.Context(), id, role)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "could not update role", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		renderPageFragment(w, "admin/users.html", "user_row", updated)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusFound)
}

// toolFromForm builds a Tool from the admin form fields.
func toolFromForm(r *http.Request) (*store.Tool, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	tool := &store.Tool{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Description: strings.TrimSpace(r.FormValue("description")),
		URL:         strings.TrimSpace(r.FormValue("url")),
		Features:    store.SplitFeatures(r.FormValue("features")),
		IsFeatured:  r.FormValue("is_featured") != "",
	}
	if logo := strings.TrimSpace(r.FormValue("logo_url")); logo != "" {
		tool.LogoURL = sql.NullString{String: logo, Valid: true}
	}
	if so := r.FormValue("sort_order"); so != "" {
		n, err := strconv.Atoi(so)
		if err != nil {
			return nil, err
		}
		tool.SortOrder = n
	}
	return tool, nil
}
