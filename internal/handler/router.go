package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/aitoolhub/aitoolhub/docs/swagger"
	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthMiddleware *auth.Middleware
	ToolStore      *store.ToolStore
	FavoriteStore  *store.FavoriteStore
	ReviewStore    *store.ReviewStore
	PostStore      *store.PostStore
	UserStore      *store.UserStore
	TokenStore     auth.TokenStore
	OIDCEnabled    bool
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	// Auth pages and form handlers (no auth required)
	authPages := NewAuthPagesHandler(deps.OIDCEnabled)
	r.Get("/auth/login", authPages.Login)
	r.Get("/auth/signup", authPages.Signup)
	r.Post("/auth/login", deps.AuthHandlers.SignIn)
	r.Post("/auth/signup", deps.AuthHandlers.SignUp)
	r.Post("/auth/logout", deps.AuthHandlers.SignOut)
	if deps.OIDCEnabled {
		r.Get("/auth/oidc/login", deps.AuthHandlers.OIDCLogin)
		r.Get("/auth/oidc/callback", deps.AuthHandlers.OIDCCallback)
	}

	// Theme toggle — no auth required.
	themeHandler := NewThemeHandler()
	r.Post("/theme", themeHandler.Toggle)

	// Public catalog pages. OptionalUser so favorite state and nav reflect
	// the signed-in account without requiring auth.
	home := NewHomeHandler(deps.ToolStore)
	tools := NewToolsHandler(deps.ToolStore, deps.FavoriteStore, deps.ReviewStore)
	blog := NewBlogHandler(deps.PostStore)
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.OptionalUser)

		r.Get("/", home.Index)
		r.Get("/tools", tools.Index)
		r.Get("/tools/{id}", tools.Detail)
		r.Get("/blog", blog.Index)
		r.Get("/blog/{id}", blog.Show)
	})

	// Authenticated routes
	favorites := NewFavoritesHandler(deps.FavoriteStore)
	tokensWeb := NewTokensHandler(deps.TokenStore)
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)

		r.Post("/tools/{id}/favorite", tools.ToggleFavorite)
		r.Post("/tools/{id}/reviews", tools.SubmitReview)

		r.Get("/favorites", favorites.Index)

		r.Get("/blog/new", blog.New)
		r.Post("/blog", blog.Create)
		r.Delete("/blog/{id}", blog.Delete)

		r.Get("/settings/tokens", tokensWeb.Index)
		r.Post("/settings/tokens", tokensWeb.Create)
		r.Delete("/settings/tokens/{id}", tokensWeb.Revoke)
	})

	// Admin routes (require admin role)
	admin := NewAdminHandler(deps.ToolStore, deps.UserStore)
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequireRole(store.RoleAdmin))

		r.Get("/admin", admin.Dashboard)
		r.Get("/admin/tools", admin.Tools)
		r.Get("/admin/tools/new", admin.NewTool)
		r.Post("/admin/tools", admin.CreateTool)
		r.Get("/admin/tools/{id}/edit", admin.EditTool)
		r.Put("/admin/tools/{id}", admin.UpdateTool)
		r.Delete("/admin/tools/{id}", admin.DeleteTool)
		r.Get("/admin/users", admin.Users)
		r.Put("/admin/users/{id}/role", admin.UpdateRole)
	})

	// Swagger UI and Prometheus metrics — no auth required.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	// API sub-router at /api/v1. Bearer tokens and session cookies both work.
	apiAuth := auth.NewAPIAuth(deps.TokenStore, deps.SessionManager, deps.UserStore)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Auth:          apiAuth,
		ToolStore:     deps.ToolStore,
		FavoriteStore: deps.FavoriteStore,
		ReviewStore:   deps.ReviewStore,
		PostStore:     deps.PostStore,
		UserStore:     deps.UserStore,
		TokenStore:    deps.TokenStore,
	}))

	return r
}
