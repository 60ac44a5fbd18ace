package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// TokensPage is the template data for the API token settings page.
type TokensPage struct {
	BasePage
	Tokens   []*auth.TokenRecord
	NewToken string // plaintext shown once after creation; empty otherwise
	Flash    *Flash
	Error    string
}

// TokensHandler provides web UI handlers for API token management.
type TokensHandler struct {
	tokens auth.TokenStore
}

// NewTokensHandler creates a new TokensHandler.
func NewTokensHandler(ts auth.TokenStore) *TokensHandler {
	return &TokensHandler{tokens: ts}
}

// Index renders the token settings page with the user's active tokens.
// GET /settings/tokens
func (h *TokensHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	records, err := h.tokens.ListByUser(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "could not load tokens", http.StatusInternalServerError)
		return
	}

	data := TokensPage{
		BasePage: newBasePage(r, user),
		Tokens:   records,
	}

	if isHTMX(r) {
		renderFragment(w, "token_list", data)
		return
	}
	render(w, "settings/tokens.html", data)
}

// Create processes the token creation form and shows the plaintext once.
// POST /settings/tokens
func (h *TokensHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		h.renderWithError(w, r, user, "Token name is required.")
		return
	}

	var expiresAt *time.Time
	if exp := r.FormValue("expires_in"); exp != "" {
		d, err := time.ParseDuration(exp)
		if err != nil {
			h.renderWithError(w, r, user, "Invalid expiry duration.")
			return
		}
		t := time.Now().Add(d)
		expiresAt = &t
	}

	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		h.renderWithError(w, r, user, "Failed to generate token.")
		return
	}

	if _, err := h.tokens.Create(r.Context(), user.ID, name, hash, expiresAt); err != nil {
		h.renderWithError(w, r, user, "Failed to create token.")
		return
	}

	records, _ := h.tokens.ListByUser(r.Context(), user.ID)

	data := TokensPage{
		BasePage: newBasePage(r, user),
		Tokens:   records,
		NewToken: plaintext,
		Flash:    &Flash{Type: "success", Message: "Token created. Copy it now, it will not be shown again."},
	}

	if isHTMX(r) {
		renderFragment(w, "token_list", data)
		return
	}
	render(w, "settings/tokens.html", data)
}

// Revoke soft-deletes a token owned by the current user.
// DELETE /settings/tokens/{id}
func (h *TokensHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	tokenID := chi.URLParam(r, "id")

	err := h.tokens.Revoke(r.Context(), tokenID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "revoke failed", http.StatusInternalServerError)
		return
	}

	records, _ := h.tokens.ListByUser(r.Context(), user.ID)

	data := TokensPage{
		BasePage: newBasePage(r, user),
		Tokens:   records,
		Flash:    &Flash{Type: "success", Message: "Token revoked."},
	}

	if isHTMX(r) {
		renderFragment(w, "token_list", data)
		return
	}
	render(w, "settings/tokens.html", data)
}

func (h *TokensHandler) renderWithError(w http.ResponseWriter, r *http.Request, user *store.User, errMsg string) {
	records, _ := h.tokens.ListByUser(r.Context(), user.ID)
	data := TokensPage{
		BasePage: newBasePage(r, user),
		Tokens:   records,
		Error:    errMsg,
	}
	if isHTMX(r) {
		renderFragment(w, "token_list", data)
		return
	}
	render(w, "settings/tokens.html", data)
}
