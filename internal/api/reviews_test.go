package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/api"
)

func putReview(env *testEnv, token, toolID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", "/tools/"+toolID+"/reviews", strings.NewReader(body))
	req = authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func TestReviews_Upsert(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	rec := putReview(env, token, tool.ID, `{"rating": 4, "comment": "solid"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.ReviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rating != 4 || resp.Comment != "solid" {
		t.Errorf("review = %d/%q, want 4/solid", resp.Rating, resp.Comment)
	}
	if resp.AuthorName != "Test User" {
		t.Errorf("author_name = %q, want %q", resp.AuthorName, "Test User")
	}
}

func TestReviews_ResubmitOverwrites(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	if rec := putReview(env, token, tool.ID, `{"rating": 2, "comment": "early take"}`); rec.Code != http.StatusOK {
		t.Fatalf("first submit: %d", rec.Code)
	}
	if rec := putReview(env, token, tool.ID, `{"rating": 5, "comment": "changed my mind"}`); rec.Code != http.StatusOK {
		t.Fatalf("second submit: %d", rec.Code)
	}

	req := httptest.NewRequest("GET", "/tools/"+tool.ID+"/reviews", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var resp api.ReviewListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ReviewCount != 1 {
		t.Fatalf("review_count = %d, want 1", resp.ReviewCount)
	}
	if resp.Reviews[0].Rating != 5 || resp.Reviews[0].Comment != "changed my mind" {
		t.Errorf("review = %d/%q, want the resubmitted values", resp.Reviews[0].Rating, resp.Reviews[0].Comment)
	}
}

func TestReviews_InvalidRating(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	for _, body := range []string{`{"rating": 0}`, `{"rating": 6}`} {
		rec := putReview(env, token, tool.ID, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestReviews_UnknownTool(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	rec := putReview(env, token, "nonexistent", `{"rating": 3}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestReviews_List_Public(t *testing.T) {
	env := newTestEnv(t)
	tool := seedTool(t, env, "Chatbot Pro", "Chat")
	user := seedUser(t, env, "user@example.com", "user")
	token := seedToken(t, env, user.ID)

	if rec := putReview(env, token, tool.ID, `{"rating": 4, "comment": "nice"}`); rec.Code != http.StatusOK {
		t.Fatalf("submit: %d", rec.Code)
	}

	// Anonymous read works.
	req := httptest.NewRequest("GET", "/tools/"+tool.ID+"/reviews", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp api.ReviewListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Reviews) != 1 || resp.AvgRating != 4.0 {
		t.Errorf("got %d reviews avg %v, want 1 review avg 4.0", len(resp.Reviews), resp.AvgRating)
	}
}
