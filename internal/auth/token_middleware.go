package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// APIAuth authenticates API requests. A Bearer token is checked first; when no
// Authorization header is present the request falls back to the web session
// cookie, so browser pages and CLI clients share the same endpoints.
type APIAuth struct {
	tokens   TokenStore
	sessions *scs.SessionManager
	users    *store.UserStore
}

// NewAPIAuth creates a new APIAuth middleware.
func NewAPIAuth(ts TokenStore, sm *scs.SessionManager, us *store.UserStore) *APIAuth {
	return &APIAuth{tokens: ts, sessions: sm, users: us}
}

// Require rejects requests that carry neither a valid Bearer token nor a valid
// session, returning 401 with {"error": "unauthorized"}. On success the token
// or session owner's *store.User is set on the request context.
func (m *APIAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := m.resolve(r)
		if user == nil {
			writeUnauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional resolves the caller when credentials are present and continues
// anonymously otherwise. Public read endpoints use it so favorites can be
// marked for signed-in callers.
func (m *APIAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := m.resolve(r); user != nil {
			r = r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *APIAuth) resolve(r *http.Request) *store.User {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return m.resolveToken(r, strings.TrimPrefix(authHeader, "Bearer "))
	}
	return m.resolveSession(r)
}

func (m *APIAuth) resolveToken(r *http.Request, plaintext string) *store.User {
	if plaintext == "" {
		return nil
	}

	hash := HashToken(plaintext)
	rec, err := m.tokens.GetByHash(r.Context(), hash)
	if err != nil {
		return nil
	}
	if rec.RevokedAt.Valid {
		return nil
	}
	if rec.ExpiresAt.Valid && rec.ExpiresAt.Time.Before(time.Now()) {
		return nil
	}

	user, err := m.users.GetByID(r.Context(), rec.UserID)
	if err != nil {
		return nil
	}

	// Update last_used_at asynchronously to avoid write overhead on every read.
	go m.tokens.UpdateLastUsed(context.Background(), rec.ID)

	return user
}

func (m *APIAuth) resolveSession(r *http.Request) *store.User {
	if m.sessions == nil {
		return nil
	}
	userID := m.sessions.GetString(r.Context(), SessionUserIDKey)
	if userID == "" {
		return nil
	}
	user, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
