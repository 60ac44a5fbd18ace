package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// tokensAPIHandler provides REST handlers for personal access tokens.
type tokensAPIHandler struct {
	tokens auth.TokenStore
}

// registerTokenRoutes registers token management routes on r.
func registerTokenRoutes(r chi.Router, tokens auth.TokenStore) {
	h := &tokensAPIHandler{tokens: tokens}
	r.Get("/tokens", h.List)
	r.Post("/tokens", h.Create)
	r.Delete("/tokens/{id}", h.Revoke)
}

// List returns the caller's tokens without sensitive fields.
// GET /api/v1/tokens
//
// @Summary      List tokens
// @Description  Returns the caller's personal access tokens. Token hashes are never returned.
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Success      200  {object}  TokenListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens [get]
func (h *tokensAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	records, err := h.tokens.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &TokenListResponse{Tokens: make([]*TokenResponse, 0, len(records))}
	for _, rec := range records {
		resp.Tokens = append(resp.Tokens, toTokenResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create generates a new token and returns the plaintext once.
// POST /api/v1/tokens
//
// @Summary      Create a token
// @Description  Generates a personal access token. The plaintext appears only in this response.
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTokenRequest  true  "Token name and optional expiry"
// @Success      201   {object}  TokenCreatedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens [post]
func (h *tokensAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
		return
	}

	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token generation failed", "INTERNAL_ERROR")
		return
	}

	rec, err := h.tokens.Create(r.Context(), user.ID, req.Name, hash, req.ExpiresAt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token creation failed", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, TokenCreatedResponse{
		TokenResponse: *toTokenResponse(rec),
		Token:         plaintext,
	})
}

// Revoke soft-deletes a token owned by the caller.
// DELETE /api/v1/tokens/{id}
//
// @Summary      Revoke a token
// @Description  Revokes a personal access token. Other users' tokens return 404.
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Token ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens/{id} [delete]
func (h *tokensAPIHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	err := h.tokens.Revoke(r.Context(), chi.URLParam(r, "id"), user.ID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "revoke failed", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTokenResponse(rec *auth.TokenRecord) *TokenResponse {
	item := &TokenResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
	}
	if rec.LastUsedAt.Valid {
		t := rec.LastUsedAt.Time
		item.LastUsedAt = &t
	}
	if rec.ExpiresAt.Valid {
		t := rec.ExpiresAt.Time
		item.ExpiresAt = &t
	}
	return item
}
