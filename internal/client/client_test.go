package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/browse"
	"github.com/aitoolhub/aitoolhub/internal/client"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/testutil"
)

// newTestServer wires a full server stack (sessions, auth handlers, API
// router) over an in-memory database, the same shape the serve command builds.
func newTestServer(t *testing.T) (*httptest.Server, *store.ToolStore, *store.UserStore) {
	t.Helper()
	db := testutil.NewTestDB(t)

	tools := store.NewToolStore(db)
	favorites := store.NewFavoriteStore(db)
	reviews := store.NewReviewStore(db)
	posts := store.NewPostStore(db)
	users := store.NewUserStore(db)
	tokens := auth.NewSQLTokenStore(db)

	sessions := auth.NewSessionManager(db, "sqlite3", time.Hour, false)
	apiAuth := auth.NewAPIAuth(tokens, sessions, users)
	authHandlers := auth.NewHandlers(nil, sessions, users, "admin@example.com", false)

	r := chi.NewRouter()
	r.Post("/auth/signup", authHandlers.SignUp)
	r.Post("/auth/login", authHandlers.SignIn)
	r.Post("/auth/logout", authHandlers.SignOut)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Auth:          apiAuth,
		ToolStore:     tools,
		FavoriteStore: favorites,
		ReviewStore:   reviews,
		PostStore:     posts,
		UserStore:     users,
		TokenStore:    tokens,
	}))

	srv := httptest.NewServer(sessions.LoadAndSave(r))
	t.Cleanup(srv.Close)
	return srv, tools, users
}

func seedTool(t *testing.T, tools *store.ToolStore, name, category string) *store.Tool {
	t.Helper()
	tool, err := tools.Create(context.Background(), &store.Tool{
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

func TestClient_AnonymousCatalogReads(t *testing.T) {
	srv, tools, _ := newTestServer(t)
	seedTool(t, tools, "Chatbot Pro", "Chat")
	seedTool(t, tools, "ImageGen", "Images")

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	got, err := c.ListTools(ctx, store.ToolQuery{Search: "chat"})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Chatbot Pro" {
		t.Errorf("search result = %v, want just Chatbot Pro", got)
	}

	cats, err := c.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("categories = %v, want 2", cats)
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user != nil {
		t.Errorf("anonymous CurrentUser = %+v, want nil", user)
	}
}

func TestClient_SessionLifecycle(t *testing.T) {
	srv, _, _ := newTestServer(t)

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	var changes atomic.Int32
	unsub := c.OnAuthChange(func() { changes.Add(1) })
	defer unsub()

	if err := c.SignUp(ctx, "user@example.com", "hunter22", "Test User"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user == nil || user.Email != "user@example.com" {
		t.Fatalf("CurrentUser = %+v, want the signed-up account", user)
	}

	role, err := c.Role(ctx)
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if role != "user" {
		t.Errorf("role = %q, want user", role)
	}

	if err := c.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	user, err = c.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser after signout: %v", err)
	}
	if user != nil {
		t.Errorf("CurrentUser after signout = %+v, want nil", user)
	}

	if err := c.SignIn(ctx, "user@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if changes.Load() != 3 {
		t.Errorf("auth change notifications = %d, want 3", changes.Load())
	}
}

func TestClient_SignIn_BadPassword(t *testing.T) {
	srv, _, _ := newTestServer(t)

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	if err := c.SignUp(ctx, "user@example.com", "hunter22", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := c.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	err = c.SignIn(ctx, "user@example.com", "wrong")
	if err == nil {
		t.Fatal("expected sign-in failure")
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("err = %v, want a 401 APIError", err)
	}
}

func TestClient_RoleSharesIdentityFetch(t *testing.T) {
	srv, _, _ := newTestServer(t)

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	if err := c.SignUp(ctx, "user@example.com", "hunter22", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	user, err := c.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user == nil {
		t.Fatal("expected a signed-in identity")
	}

	// Role decodes from the response CurrentUser already fetched, so it must
	// not need the server again until the next auth change.
	srv.Close()

	role, err := c.Role(ctx)
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if role != "user" {
		t.Errorf("role = %q, want user", role)
	}
}

func TestClient_FavoritesRoundTripThroughBrowse(t *testing.T) {
	srv, tools, _ := newTestServer(t)
	tool := seedTool(t, tools, "Chatbot Pro", "Chat")

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	if err := c.SignUp(ctx, "user@example.com", "hunter22", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Drive the interaction model over the HTTP client.
	vm := browse.NewViewModel(c)
	if err := vm.Mount(ctx, true); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	toggle := browse.NewFavoriteToggle(tool.ID, c, vm)
	if err := toggle.Toggle(ctx); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !vm.IsFavorite(tool.ID) {
		t.Error("expected the tool in the confirmed favorite set")
	}

	ids, err := c.FavoriteIDs(ctx)
	if err != nil {
		t.Fatalf("FavoriteIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != tool.ID {
		t.Errorf("server favorites = %v, want [%s]", ids, tool.ID)
	}

	if err := toggle.Toggle(ctx); err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	ids, err = c.FavoriteIDs(ctx)
	if err != nil {
		t.Fatalf("FavoriteIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("server favorites after round trip = %v, want none", ids)
	}
}

func TestClient_ReviewResubmitOverwrites(t *testing.T) {
	srv, tools, _ := newTestServer(t)
	tool := seedTool(t, tools, "Chatbot Pro", "Chat")

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	ctx := context.Background()

	if err := c.SignUp(ctx, "user@example.com", "hunter22", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := c.SubmitReview(ctx, tool.ID, 2, "early take"); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := c.SubmitReview(ctx, tool.ID, 5, "changed my mind"); err != nil {
		t.Fatalf("second review: %v", err)
	}

	list, err := c.Reviews(ctx, tool.ID)
	if err != nil {
		t.Fatalf("Reviews: %v", err)
	}
	if list.ReviewCount != 1 {
		t.Fatalf("review_count = %d, want 1", list.ReviewCount)
	}
	if list.Reviews[0].Rating != 5 {
		t.Errorf("rating = %d, want the resubmitted 5", list.Reviews[0].Rating)
	}
}
