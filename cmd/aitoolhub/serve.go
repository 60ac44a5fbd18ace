package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/config"
	"github.com/aitoolhub/aitoolhub/internal/db"
	"github.com/aitoolhub/aitoolhub/internal/handler"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			ctx := context.Background()
			var oidcProvider *auth.Provider
			if cfg.OIDCEnabled() {
				oidcProvider, err = auth.NewProvider(ctx, cfg)
				if err != nil {
					return err
				}
			}

			userStore := store.NewUserStore(database)
			toolStore := store.NewToolStore(database)
			favoriteStore := store.NewFavoriteStore(database)
			reviewStore := store.NewReviewStore(database)
			postStore := store.NewPostStore(database)
			tokenStore := auth.NewSQLTokenStore(database)

			go runGaugeUpdater(ctx, toolStore, userStore)

			authHandlers := auth.NewHandlers(oidcProvider, sessionManager, userStore, cfg.AdminEmail, !cfg.InsecureCookies)
			authMiddleware := auth.NewMiddleware(sessionManager, userStore)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				ToolStore:      toolStore,
				FavoriteStore:  favoriteStore,
				ReviewStore:    reviewStore,
				PostStore:      postStore,
				UserStore:      userStore,
				TokenStore:     tokenStore,
				OIDCEnabled:    cfg.OIDCEnabled(),
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// runGaugeUpdater refreshes the catalog and account size gauges once a minute.
func runGaugeUpdater(ctx context.Context, tools *store.ToolStore, users *store.UserStore) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	update := func() {
		if n, err := tools.Count(ctx); err == nil {
			metrics.ToolsTotal.Set(float64(n))
		}
		if n, err := users.Count(ctx); err == nil {
			metrics.UsersTotal.Set(float64(n))
		}
	}
	update()

	for {
		select {
		case <-ticker.C:
			update()
		case <-ctx.Done():
			return
		}
	}
}
