package handler

import (
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// FavoritesPage is the template data for the saved-tools view.
type FavoritesPage struct {
	BasePage
	Tools     []*store.Tool
	Favorites map[string]bool
}

// FavoritesHandler serves the signed-in user's saved tools.
type FavoritesHandler struct {
	favorites *store.FavoriteStore
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(fs *store.FavoriteStore) *FavoritesHandler {
	return &FavoritesHandler{favorites: fs}
}

// Index renders the user's favorited tools.
// GET /favorites
func (h *FavoritesHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	tools, err := h.favorites.ListTools(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "could not load favorites", http.StatusInternalServerError)
		return
	}

	// Everything on this page is favorited by definition.
	set := make(map[string]bool, len(tools))
	for _, t := range tools {
		set[t.ID] = true
	}

	render(w, "favorites.html", FavoritesPage{
		BasePage:  newBasePage(r, user),
		Tools:     tools,
		Favorites: set,
	})
}
