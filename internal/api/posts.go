package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// postsAPIHandler provides REST handlers for blog posts.
type postsAPIHandler struct {
	posts *store.PostStore
}

// registerPostReadRoutes registers public post routes on r.
func registerPostReadRoutes(r chi.Router, posts *store.PostStore) {
	h := &postsAPIHandler{posts: posts}
	r.Get("/posts", h.List)
	r.Get("/posts/{id}", h.Get)
}

// registerPostWriteRoutes registers authenticated post routes on r.
func registerPostWriteRoutes(r chi.Router, posts *store.PostStore) {
	h := &postsAPIHandler{posts: posts}
	r.Post("/posts", h.Create)
	r.Delete("/posts/{id}", h.Delete)
}

// List returns all blog posts, newest first.
// GET /api/v1/posts
//
// @Summary      List posts
// @Description  Returns all blog posts, newest first.
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Success      200  {object}  PostListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [get]
func (h *postsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &PostListResponse{Posts: make([]*PostResponse, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single post by ID.
// GET /api/v1/posts/{id}
//
// @Summary      Get a post
// @Description  Returns a single blog post by ID.
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func (h *postsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

// Create publishes a new post authored by the caller.
// POST /api/v1/posts
//
// @Summary      Create a post
// @Description  Publishes a new blog post authored by the caller.
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "Post to create"
// @Success      201   {object}  PostResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /posts [post]
func (h *postsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "title and content are required", "BAD_REQUEST")
		return
	}

	post, err := h.posts.Create(r.Context(), req.Title, req.Content, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// Delete removes a post. Only the author or an admin may delete.
// DELETE /api/v1/posts/{id}
//
// @Summary      Delete a post
// @Description  Removes a blog post. Only the author or an admin may delete.
// @Tags         Posts
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /posts/{id} [delete]
func (h *postsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	postID := chi.URLParam(r, "id")
	post, err := h.posts.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if post.UserID != user.ID && !user.IsAdmin() {
		writeError(w, http.StatusForbidden, "forbidden", "FORBIDDEN")
		return
	}

	if err := h.posts.Delete(r.Context(), postID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPostResponse(p *store.Post) *PostResponse {
	return &PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		UserID:     p.UserID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
	}
}
