package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// ToolsPage is the template data for the catalog browse view.
type ToolsPage struct {
	BasePage
	Tools      []*store.Tool
	Categories []string
	Favorites  map[string]bool
	Query      string
	Category   string
	Sort       string
	Flash      *Flash
}

// ToolDetailPage is the template data for a single tool view.
type ToolDetailPage struct {
	BasePage
	Tool        *store.Tool
	Reviews     []*store.Review
	AvgRating   float64
	ReviewCount int
	Favorited   bool
	OwnReview   *store.Review
	Flash       *Flash
}

// FavoriteButton is the template data for the favorite toggle fragment.
type FavoriteButton struct {
	ToolID    string
	Favorited bool
	SignedIn  bool
}

// ToolsHandler serves the public catalog pages.
type ToolsHandler struct {
	tools     *store.ToolStore
	favorites *store.FavoriteStore
	reviews   *store.ReviewStore
}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler(ts *store.ToolStore, fs *store.FavoriteStore, rs *store.ReviewStore) *ToolsHandler {
	return &ToolsHandler{tools: ts, favorites: fs, reviews: rs}
}

// Index renders the catalog with search, category, and sort filters.
// The search box re-requests this route via HTMX after a 300ms debounce and
// swaps only the tool list fragment.
// GET /tools
func (h *ToolsHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	sort := r.URL.Query().Get("sort")

	query := store.ToolQuery{
		Search:   q,
		Category: category,
		Sort:     store.ParseSortMode(sort),
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			query.Limit = n
		}
	}

	tools, err := h.tools.List(r.Context(), query)
	if err != nil {
		http.Error(w, "could not load tools", http.StatusInternalServerError)
		return
	}
	categories, _ := h.tools.Categories(r.Context())

	data := ToolsPage{
		BasePage:   newBasePage(r, user),
		Tools:      tools,
		Categories: categories,
		Favorites:  h.favoriteSet(r, user),
		Query:      q,
		Category:   category,
		Sort:       string(query.Sort),
	}

	if isHTMX(r) {
		renderFragment(w, "tool_list", data)
		return
	}
	render(w, "tools/index.html", data)
}

// Detail renders one tool with its reviews and rating summary.
// GET /tools/{id}
func (h *ToolsHandler) Detail(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := h.reviews.ListByTool(r.Context(), id)
	if err != nil {
		http.Error(w, "could not load reviews", http.StatusInternalServerError)
		return
	}
	avg, count, _ := h.reviews.AverageForTool(r.Context(), id)

	data := ToolDetailPage{
		BasePage:    newBasePage(r, user),
		Tool:        tool,
		Reviews:     reviews,
		AvgRating:   avg,
		ReviewCount: count,
	}
	if user != nil {
		data.Favorited, _ = h.favorites.IsFavorited(r.Context(), user.ID, id)
		for _, rv := range reviews {
			if rv.UserID == user.ID {
				data.OwnReview = rv
				break
			}
		}
	}

	render(w, "tools/detail.html", data)
}

// ToggleFavorite flips the favorite state of a tool and returns the updated
// button fragment. When the write fails the fragment re-renders the pre-toggle
// state, so the page never shows a favorite the server did not record.
// POST /tools/{id}/favorite
func (h *ToolsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	toolID := chi.URLParam(r, "id")

	if _, err := h.tools.GetByID(r.Context(), toolID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "could not load tool", http.StatusInternalServerError)
		return
	}

	was, err := h.favorites.IsFavorited(r.Context(), user.ID, toolID)
	if err != nil {
		http.Error(w, "could not load favorite state", http.StatusInternalServerError)
		return
	}

	if was {
		err = h.favorites.Remove(r.Context(), user.ID, toolID)
	} else {
		err = h.favorites.Add(r.Context(), user.ID, toolID)
	}
	state := !was
	if err != nil {
		// Roll back to the state before the toggle.
		state = was
	} else if was {
		metrics.FavoriteTogglesTotal.WithLabelValues("remove").Inc()
	} else {
		metrics.FavoriteTogglesTotal.WithLabelValues("add").Inc()
	}

	renderFragment(w, "favorite_button", FavoriteButton{
		ToolID:    toolID,
		Favorited: state,
		SignedIn:  true,
	})
}

// SubmitReview creates or replaces the caller's review of a tool. A second
// submission for the same tool overwrites the first.
// POST /tools/{id}/reviews
func (h *ToolsHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	toolID := chi.URLParam(r, "id")

	if _, err := h.tools.GetByID(r.Context(), toolID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "could not load tool", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		http.Error(w, "invalid rating", http.StatusBadRequest)
		return
	}

	_, err = h.reviews.Upsert(r.Context(), toolID, user.ID, rating, r.FormValue("comment"))
	if errors.Is(err, store.ErrInvalidRating) {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "could not save review", http.StatusInternalServerError)
		return
	}
	metrics.ReviewUpsertsTotal.Inc()

	if isHTMX(r) {
		h.renderReviewList(w, r, toolID, user)
		return
	}
	http.Redirect(w, r, "/tools/"+toolID, http.StatusFound)
}

func (h *ToolsHandler) renderReviewList(w http.ResponseWriter, r *http.Request, toolID string, user *store.User) {
	reviews, err := h.reviews.ListByTool(r.Context(), toolID)
	if err != nil {
		http.Error(w, "could not load reviews", http.StatusInternalServerError)
		return
	}
	avg, count, _ := h.reviews.AverageForTool(r.Context(), toolID)

	data := ToolDetailPage{
		BasePage:    newBasePage(r, user),
		Reviews:     reviews,
		AvgRating:   avg,
		ReviewCount: count,
	}
	renderFragment(w, "review_list", data)
}

// favoriteSet loads the user's favorited tool IDs as a lookup set. Anonymous
// visitors and lookup failures get an empty set, so the catalog still renders.
func (h *ToolsHandler) favoriteSet(r *http.Request, user *store.User) map[string]bool {
	set := map[string]bool{}
	if user == nil {
		return set
	}
	ids, err := h.favorites.ListToolIDs(r.Context(), user.ID)
	if err != nil {
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}
