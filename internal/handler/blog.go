package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// BlogPage is the template data for the blog index.
type BlogPage struct {
	BasePage
	Posts []*store.Post
}

// BlogPostPage is the template data for a single post view.
type BlogPostPage struct {
	BasePage
	Post      *store.Post
	CanDelete bool
}

// BlogFormPage is the template data for the new-post form.
type BlogFormPage struct {
	BasePage
	Error string
	Title string
	Body  string
}

// BlogHandler serves the blog pages.
type BlogHandler struct {
	posts *store.PostStore
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(ps *store.PostStore) *BlogHandler {
	return &BlogHandler{posts: ps}
}

// Index renders all posts, newest first.
// GET /blog
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	posts, err := h.posts.ListAll(r.Context())
	if err != nil {
		http.Error(w, "could not load posts", http.StatusInternalServerError)
		return
	}

	render(w, "blog/index.html", BlogPage{
		BasePage: newBasePage(r, user),
		Posts:    posts,
	})
}

// Show renders a single post.
// GET /blog/{id}
func (h *BlogHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	post, err := h.posts.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "could not load post", http.StatusInternalServerError)
		return
	}

	render(w, "blog/show.html", BlogPostPage{
		BasePage:  newBasePage(r, user),
		Post:      post,
		CanDelete: user != nil && (user.ID == post.UserID || user.IsAdmin()),
	})
}

// New renders the post composition form.
// GET /blog/new
func (h *BlogHandler) New(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	render(w, "blog/new.html", BlogFormPage{BasePage: newBasePage(r, user)})
}

// Create publishes a post authored by the current user.
// POST /blog
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		render(w, "blog/new.html", BlogFormPage{
			BasePage: newBasePage(r, user),
			Error:    "Title and content are required.",
			Title:    title,
			Body:     content,
		})
		return
	}

	post, err := h.posts.Create(r.Context(), title, content, user.ID)
	if err != nil {
		http.Error(w, "could not create post", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/blog/"+post.ID, http.StatusFound)
}

// Delete removes a post. Only the author or an admin may delete.
// DELETE /blog/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	post, err := h.posts.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "could not load post", http.StatusInternalServerError)
		return
	}
	if user.ID != post.UserID && !user.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		http.Error(w, "could not delete post", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/blog")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/blog", http.StatusFound)
}
