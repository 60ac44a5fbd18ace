package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// toolsAPIHandler provides REST handlers for the public tool catalog.
type toolsAPIHandler struct {
	tools     *store.ToolStore
	favorites *store.FavoriteStore
	reviews   *store.ReviewStore
}

// registerToolRoutes registers public catalog routes on r.
func registerToolRoutes(r chi.Router, tools *store.ToolStore, favorites *store.FavoriteStore, reviews *store.ReviewStore) {
	h := &toolsAPIHandler{tools: tools, favorites: favorites, reviews: reviews}
	r.Get("/tools", h.List)
	r.Get("/tools/{id}", h.Get)
	r.Get("/categories", h.Categories)
}

// List returns the catalog filtered by search text, category, and sort mode.
// GET /api/v1/tools
//
// @Summary      List tools
// @Description  Returns the tool catalog. Supports q (substring search on name and description), category (exact), sort (featured, newest, name-asc, name-desc), and limit.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        q         query     string  false  "Search text"
// @Param        category  query     string  false  "Category filter"
// @Param        sort      query     string  false  "Sort mode"  Enums(featured, newest, name-asc, name-desc)
// @Param        limit     query     int     false  "Result cap"
// @Success      200  {object}  ToolListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tools [get]
func (h *toolsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := store.ToolQuery{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Sort:     store.ParseSortMode(r.URL.Query().Get("sort")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}

	tools, err := h.tools.List(r.Context(), q)
	if err != nil {
		metrics.ToolListRequestsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	favorited := h.favoritedSet(r)

	resp := &ToolListResponse{Tools: make([]*ToolResponse, 0, len(tools))}
	for _, t := range tools {
		resp.Tools = append(resp.Tools, toToolResponse(t, favorited[t.ID]))
	}

	metrics.ToolListRequestsTotal.WithLabelValues("ok").Inc()
	metrics.ToolListDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single tool with its review summary.
// GET /api/v1/tools/{id}
//
// @Summary      Get a tool
// @Description  Returns a single tool by ID with its average rating and review count.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tool ID"
// @Success      200  {object}  ToolDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tools/{id} [get]
func (h *toolsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	toolID := chi.URLParam(r, "id")
	tool, err := h.tools.GetByID(r.Context(), toolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	avg, count, err := h.reviews.AverageForTool(r.Context(), toolID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	favorited := h.favoritedSet(r)

	writeJSON(w, http.StatusOK, &ToolDetailResponse{
		ToolResponse: *toToolResponse(tool, favorited[tool.ID]),
		AvgRating:    avg,
		ReviewCount:  count,
	})
}

// Categories returns the distinct category list for the filter dropdown.
// GET /api/v1/categories
//
// @Summary      List categories
// @Description  Returns the distinct set of tool categories, alphabetically.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Success      200  {object}  CategoryListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (h *toolsAPIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.tools.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, &CategoryListResponse{Categories: cats})
}

// favoritedSet returns the caller's favorite tool IDs as a set, or an empty
// set for anonymous callers. Lookup failures degrade to unmarked favorites
// rather than failing the whole listing.
func (h *toolsAPIHandler) favoritedSet(r *http.Request) map[string]bool {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		return nil
	}
	ids, err := h.favorites.ListToolIDs(r.Context(), user.ID)
	if err != nil {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func toToolResponse(t *store.Tool, favorited bool) *ToolResponse {
	features := []string(t.Features)
	if features == nil {
		features = []string{}
	}
	resp := &ToolResponse{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		URL:         t.URL,
		Features:    features,
		IsFeatured:  t.IsFeatured,
		SortOrder:   t.SortOrder,
		Favorited:   favorited,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.LogoURL.Valid {
		resp.LogoURL = t.LogoURL.String
	}
	return resp
}
