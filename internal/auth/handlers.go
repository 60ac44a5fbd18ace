package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

const (
	cookieState        = "__auth_state"
	cookieCodeVerifier = "__auth_pkce"
	cookieRedirect     = "__auth_redirect"
)

// Handlers provides HTTP handlers for email/password authentication plus the
// optional OIDC SSO flow.
type Handlers struct {
	provider      *Provider // nil when SSO is not configured
	sessions      *scs.SessionManager
	users         *store.UserStore
	adminEmail    string
	secureCookies bool
}

// NewHandlers creates a new Handlers with the given dependencies. provider may
// be nil to disable SSO login.
func NewHandlers(p *Provider, sm *scs.SessionManager, us *store.UserStore, adminEmail string, secureCookies bool) *Handlers {
	return &Handlers{provider: p, sessions: sm, users: us, adminEmail: adminEmail, secureCookies: secureCookies}
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// wantsJSON reports whether the client posted a JSON body (the API client)
// rather than an HTML form (the web pages).
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func readCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if wantsJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Email = r.PostFormValue("email")
	req.Password = r.PostFormValue("password")
	req.DisplayName = r.PostFormValue("display_name")
	return req, nil
}

// SignUp creates a local account and starts a session.
// POST /auth/signup
func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(r)
	if err != nil || req.Email == "" || req.Password == "" {
		h.fail(w, r, http.StatusBadRequest, "email and password are required", "/auth/signup")
		return
	}

	user, err := h.users.SignUp(r.Context(), req.Email, req.Password, req.DisplayName, h.adminEmail)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			h.fail(w, r, http.StatusConflict, err.Error(), "/auth/signup")
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "internal error", "/auth/signup")
		return
	}

	h.establishSession(w, r, user)
}

// SignIn verifies email/password credentials and starts a session.
// POST /auth/login
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(r)
	if err != nil || req.Email == "" || req.Password == "" {
		h.fail(w, r, http.StatusBadRequest, "email and password are required", "/auth/login")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			h.fail(w, r, http.StatusUnauthorized, err.Error(), "/auth/login?error=1")
			return
		}
		h.fail(w, r, http.StatusInternalServerError, "internal error", "/auth/login")
		return
	}

	h.establishSession(w, r, user)
}

// SignOut destroys the session.
// POST /auth/logout
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		h.fail(w, r, http.StatusInternalServerError, "logout error", "/")
		return
	}
	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// establishSession renews the session token and records the signed-in user.
// The role is stored alongside the user ID but re-resolved from the users table
// on every request, so a role change takes effect without re-login.
func (h *Handlers) establishSession(w http.ResponseWriter, r *http.Request, user *store.User) {
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		h.fail(w, r, http.StatusInternalServerError, "session error", "/auth/login")
		return
	}
	h.sessions.Put(r.Context(), SessionUserIDKey, user.ID)
	h.sessions.Put(r.Context(), SessionRoleKey, user.Role)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
			"role":         user.Role,
		})
		return
	}

	redirect := r.URL.Query().Get("redirect")
	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		if user.IsAdmin() {
			redirect = "/admin"
		} else {
			redirect = "/tools"
		}
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, status int, msg, redirect string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": msg})
		return
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

// OIDCLogin initiates the OIDC authorization code flow with PKCE.
// GET /auth/oidc/login
func (h *Handlers) OIDCLogin(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		http.NotFound(w, r)
		return
	}
	state, err := GenerateState()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	verifier, challenge, err := GeneratePKCE()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Store state and verifier in short-lived cookies
	h.setPreAuthCookie(w, cookieState, state)
	h.setPreAuthCookie(w, cookieCodeVerifier, verifier)

	// Preserve the redirect URL
	redirect := r.URL.Query().Get("redirect")
	if redirect == "" {
		redirect = "/tools"
	}
	h.setPreAuthCookie(w, cookieRedirect, redirect)

	http.Redirect(w, r, h.provider.AuthCodeURL(state, challenge), http.StatusFound)
}

// OIDCCallback handles the provider redirect after authentication.
// GET /auth/oidc/callback
func (h *Handlers) OIDCCallback(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		http.NotFound(w, r)
		return
	}

	stateCookie, err := r.Cookie(cookieState)
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	verifierCookie, err := r.Cookie(cookieCodeVerifier)
	if err != nil {
		http.Error(w, "missing code verifier", http.StatusBadRequest)
		return
	}

	idToken, err := h.provider.Exchange(r.Context(), r.URL.Query().Get("code"), verifierCookie.Value)
	if err != nil {
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		http.Error(w, "invalid claims", http.StatusUnauthorized)
		return
	}

	user, err := h.users.UpsertOIDC(r.Context(), idToken.Issuer, claims.Subject, claims.Email, claims.Name, h.adminEmail)
	if err != nil {
		http.Error(w, "user record error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	h.sessions.Put(r.Context(), SessionUserIDKey, user.ID)
	h.sessions.Put(r.Context(), SessionRoleKey, user.Role)

	clearCookie(w, cookieState)
	clearCookie(w, cookieCodeVerifier)

	redirectCookie, err := r.Cookie(cookieRedirect)
	redirect := "/tools"
	if err == nil && redirectCookie.Value != "" {
		redirect = redirectCookie.Value
	}
	clearCookie(w, cookieRedirect)

	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *Handlers) setPreAuthCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   300, // 5 minutes
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}
