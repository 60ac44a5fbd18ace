package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Auth          *auth.APIAuth
	ToolStore     *store.ToolStore
	FavoriteStore *store.FavoriteStore
	ReviewStore   *store.ReviewStore
	PostStore     *store.PostStore
	UserStore     *store.UserStore
	TokenStore    auth.TokenStore
}

// NewAPIRouter creates a chi sub-router for /api/v1. Catalog reads are public;
// everything that writes or is user-scoped requires a Bearer token or a web
// session. All routes return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)

	// Public catalog reads. Optional auth marks favorites for signed-in callers.
	r.Group(func(pub chi.Router) {
		pub.Use(deps.Auth.Optional)
		registerToolRoutes(pub, deps.ToolStore, deps.FavoriteStore, deps.ReviewStore)
		registerReviewReadRoutes(pub, deps.ReviewStore)
		registerPostReadRoutes(pub, deps.PostStore)
	})

	// Authenticated routes.
	r.Group(func(priv chi.Router) {
		priv.Use(deps.Auth.Require)
		registerMeRoutes(priv)
		registerFavoriteRoutes(priv, deps.FavoriteStore, deps.ToolStore)
		registerReviewWriteRoutes(priv, deps.ReviewStore, deps.ToolStore)
		registerPostWriteRoutes(priv, deps.PostStore)
		registerTokenRoutes(priv, deps.TokenStore)
		registerAdminRoutes(priv, deps.ToolStore, deps.UserStore)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
