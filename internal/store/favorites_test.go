package store_test

import (
	"context"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

func seedFavUser(t *testing.T, us *store.UserStore, email string) *store.User {
	t.Helper()
	u, err := us.SignUp(context.Background(), email, "hunter22", "", "")
	if err != nil {
		t.Fatalf("seed user %q: %v", email, err)
	}
	return u
}

func TestFavoriteStore_AddAndList(t *testing.T) {
	ts, fs, _, us := newToolTestEnv(t)
	ctx := context.Background()

	u := seedFavUser(t, us, "user@example.com")
	tool := seedTool(t, ts, &store.Tool{Name: "Chatbot Pro", Category: "Chat"})

	if err := fs.Add(ctx, u.ID, tool.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ids, err := fs.ListToolIDs(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListToolIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != tool.ID {
		t.Errorf("ids = %v, want [%s]", ids, tool.ID)
	}

	tools, err := fs.ListTools(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "Chatbot Pro" {
		t.Errorf("tools = %v, want the favorited record", tools)
	}
}

func TestFavoriteStore_Add_Idempotent(t *testing.T) {
	ts, fs, _, us := newToolTestEnv(t)
	ctx := context.Background()

	u := seedFavUser(t, us, "user@example.com")
	tool := seedTool(t, ts, &store.Tool{Name: "Chatbot Pro", Category: "Chat"})

	for i := 0; i < 3; i++ {
		if err := fs.Add(ctx, u.ID, tool.ID); err != nil {
			t.Fatalf("Add #%d: %v", i+1, err)
		}
	}

	ids, err := fs.ListToolIDs(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListToolIDs: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("ids = %v, want exactly one row", ids)
	}
}

func TestFavoriteStore_Remove_AbsentIsNoop(t *testing.T) {
	ts, fs, _, us := newToolTestEnv(t)
	ctx := context.Background()

	u := seedFavUser(t, us, "user@example.com")
	tool := seedTool(t, ts, &store.Tool{Name: "Chatbot Pro", Category: "Chat"})

	if err := fs.Remove(ctx, u.ID, tool.ID); err != nil {
		t.Errorf("Remove of absent favorite: %v, want nil", err)
	}
}

func TestFavoriteStore_RoundTrip(t *testing.T) {
	ts, fs, _, us := newToolTestEnv(t)
	ctx := context.Background()

	u := seedFavUser(t, us, "user@example.com")
	tool := seedTool(t, ts, &store.Tool{Name: "Chatbot Pro", Category: "Chat"})

	if err := fs.Add(ctx, u.ID, tool.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := fs.Remove(ctx, u.ID, tool.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	favorited, err := fs.IsFavorited(ctx, u.ID, tool.ID)
	if err != nil {
		t.Fatalf("IsFavorited: %v", err)
	}
	if favorited {
		t.Error("expected the original (unfavorited) state after the round trip")
	}
}

func TestFavoriteStore_ScopedToUser(t *testing.T) {
	ts, fs, _, us := newToolTestEnv(t)
	ctx := context.Background()

	u1 := seedFavUser(t, us, "one@example.com")
	u2 := seedFavUser(t, us, "two@example.com")
	tool := seedTool(t, ts, &store.Tool{Name: "Chatbot Pro", Category: "Chat"})

	if err := fs.Add(ctx, u1.ID, tool.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	favorited, err := fs.IsFavorited(ctx, u2.ID, tool.ID)
	if err != nil {
		t.Fatalf("IsFavorited: %v", err)
	}
	if favorited {
		t.Error("one user's favorite must not leak into another's set")
	}
}
