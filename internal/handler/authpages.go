package handler

import "net/http"

// AuthPage is the template data for the login and signup forms.
type AuthPage struct {
	BasePage
	OIDCEnabled bool
	Error       string
	Redirect    string
}

// AuthPagesHandler renders the login and signup forms. The form posts go to
// the auth package's handlers.
type AuthPagesHandler struct {
	oidcEnabled bool
}

// NewAuthPagesHandler creates a new AuthPagesHandler.
func NewAuthPagesHandler(oidcEnabled bool) *AuthPagesHandler {
	return &AuthPagesHandler{oidcEnabled: oidcEnabled}
}

// Login renders the sign-in form.
// GET /auth/login
func (h *AuthPagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	data := AuthPage{
		BasePage:    newBasePage(r, nil),
		OIDCEnabled: h.oidcEnabled,
		Redirect:    r.URL.Query().Get("redirect"),
	}
	if r.URL.Query().Get("error") != "" {
		data.Error = "Invalid email or password."
	}
	render(w, "auth/login.html", data)
}

// Signup renders the account creation form.
// GET /auth/signup
func (h *AuthPagesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	render(w, "auth/signup.html", AuthPage{
		BasePage:    newBasePage(r, nil),
		OIDCEnabled: h.oidcEnabled,
	})
}
