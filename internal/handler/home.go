package handler

import (
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// featuredPreviewLimit caps the featured tools strip on the landing page.
const featuredPreviewLimit = 6

// HomePage is the template data for the landing page.
type HomePage struct {
	BasePage
	Featured   []*store.Tool
	Categories []string
}

// HomeHandler serves the public landing page.
type HomeHandler struct {
	tools *store.ToolStore
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(ts *store.ToolStore) *HomeHandler {
	return &HomeHandler{tools: ts}
}

// Index renders the landing page with a featured tools preview.
// GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	featured, err := h.tools.List(r.Context(), store.ToolQuery{
		Sort:  store.SortFeatured,
		Limit: featuredPreviewLimit,
	})
	if err != nil {
		http.Error(w, "could not load tools", http.StatusInternalServerError)
		return
	}
	categories, _ := h.tools.Categories(r.Context())

	render(w, "home.html", HomePage{
		BasePage:   newBasePage(r, user),
		Featured:   featured,
		Categories: categories,
	})
}
