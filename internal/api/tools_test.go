package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/api"
)

func TestTools_List_Public(t *testing.T) {
	env := newTestEnv(t)
	seedTool(t, env, "Chatbot Pro", "Chat")
	seedTool(t, env, "ImageGen", "Images")

	req := httptest.NewRequest("GET", "/tools", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp api.ToolListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Tools) != 2 {
		t.Errorf("len(tools) = %d, want 2", len(resp.Tools))
	}
}

func TestTools_List_SearchCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	seedTool(t, env, "Chatbot Pro", "Chat")
	seedTool(t, env, "ImageGen", "Images")

	for _, q := range []string{"chat", "CHAT", "Chatbot"} {
		req := httptest.NewRequest("GET", "/tools?q="+q, nil)
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)

		var resp api.ToolListResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Tools) != 1 || resp.Tools[0].Name != "Chatbot Pro" {
			t.Errorf("q=%q: got %d tools, want just Chatbot Pro", q, len(resp.Tools))
		}
	}
}

func TestTools_List_CategoryAndSort(t *testing.T) {
	env := newTestEnv(t)
	seedTool(t, env, "Zeta", "Chat")
	seedTool(t, env, "Alpha", "Chat")
	seedTool(t, env, "Middle", "Images")

	req := httptest.NewRequest("GET", "/tools?category=Chat&sort=name-asc", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var resp api.ToolListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Tools) != 2 {
		t.Fatalf("len(tools) = %d, want 2", len(resp.Tools))
	}
	if resp.Tools[0].Name != "Alpha" || resp.Tools[1].Name != "Zeta" {
		t.Errorf("order = [%s, %s], want [Alpha, Zeta]", resp.Tools[0].Name, resp.Tools[1].Name)
	}
}

func TestTools_List_FavoritedMarking(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	seedTool(t, env, "ImageGen", "Images")
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	if err := env.FavoriteStore.Add(context.Background(), user.ID, tool.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	req := authRequest(httptest.NewRequest("GET", "/tools", nil), token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var resp api.ToolListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, tr := range resp.Tools {
		want := tr.ID == tool.ID
		if tr.Favorited != want {
			t.Errorf("tool %s: favorited = %v, want %v", tr.Name, tr.Favorited, want)
		}
	}
}

func TestTools_Get_WithReviewSummary(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	u1 := seedUser(t, env, "a@example.com", "user")
	u2 := seedUser(t, env, "b@example.com", "user")

	ctx := context.Background()
	if _, err := env.ReviewStore.Upsert(ctx, tool.ID, u1.ID, 4, "good"); err != nil {
		t.Fatalf("review 1: %v", err)
	}
	if _, err := env.ReviewStore.Upsert(ctx, tool.ID, u2.ID, 2, "meh"); err != nil {
		t.Fatalf("review 2: %v", err)
	}

	req := httptest.NewRequest("GET", "/tools/"+tool.ID, nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp api.ToolDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ReviewCount != 2 {
		t.Errorf("review_count = %d, want 2", resp.ReviewCount)
	}
	if resp.AvgRating != 3.0 {
		t.Errorf("avg_rating = %v, want 3.0", resp.AvgRating)
	}
}

func TestTools_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/tools/nonexistent", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCategories(t *testing.T) {
	env := newTestEnv(t)
	seedTool(t, env, "A", "Images")
	seedTool(t, env, "B", "Chat")
	seedTool(t, env, "C", "Chat")

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var resp api.CategoryListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Categories) != 2 {
		t.Fatalf("len(categories) = %d, want 2", len(resp.Categories))
	}
	if resp.Categories[0] != "Chat" || resp.Categories[1] != "Images" {
		t.Errorf("categories = %v, want [Chat Images]", resp.Categories)
	}
}
