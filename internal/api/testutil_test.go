package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router        http.Handler
	ToolStore     *store.ToolStore
	FavoriteStore *store.FavoriteStore
	ReviewStore   *store.ReviewStore
	PostStore     *store.PostStore
	UserStore     *store.UserStore
	TokenStore    *auth.SQLTokenStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	ts := store.NewToolStore(db)
	fs := store.NewFavoriteStore(db)
	rs := store.NewReviewStore(db)
	ps := store.NewPostStore(db)
	us := store.NewUserStore(db)
	tok := auth.NewSQLTokenStore(db)

	deps := api.Deps{
		Auth:          auth.NewAPIAuth(tok, nil, us),
		ToolStore:     ts,
		FavoriteStore: fs,
		ReviewStore:   rs,
		PostStore:     ps,
		UserStore:     us,
		TokenStore:    tok,
	}

	return &testEnv{
		Router:        api.NewAPIRouter(deps),
		ToolStore:     ts,
		FavoriteStore: fs,
		ReviewStore:   rs,
		PostStore:     ps,
		UserStore:     us,
		TokenStore:    tok,
	}
}

// seedUser creates a user with the given role and returns the user record.
func seedUser(t *testing.T, env *testEnv, email, role string) *store.User {
	t.Helper()
	ctx := context.Background()
	u, err := env.UserStore.SignUp(ctx, email, "hunter22", "Test User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if role != store.RoleUser {
		u, err = env.UserStore.UpdateRole(ctx, u.ID, role)
		if err != nil {
			t.Fatalf("update role: %v", err)
		}
	}
	return u
}

// seedToken creates a real API token for a user and returns the plaintext Bearer value.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	_, err = env.TokenStore.Create(context.Background(), userID, "test-token", hash, nil)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// seedTool creates a catalog entry and returns the stored record.
func seedTool(t *testing.T, env *testEnv, name, category string) *store.Tool {
	t.Helper()
	tool, err := env.ToolStore.Create(context.Background(), &store.Tool{
		Name:        name,
		Category:    category,
		Description: name + " description",
		URL:         "https://example.com/" + name,
	})
	if err != nil {
		t.Fatalf("seed tool: %v", err)
	}
	return tool
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
