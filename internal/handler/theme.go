package handler

import (
	"encoding/json"
	"net/http"
)

// ThemeHandler handles the theme toggle endpoint.
type ThemeHandler struct{}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Toggle handles POST /theme.
// No auth required. Sets the theme cookie and returns HX-Trigger for
// client-side swap.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	theme := r.FormValue("theme")
	if theme != "hub-light" && theme != "hub-dark" {
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}

	// Persist via cookie (non-HttpOnly so the anti-flash script can read it).
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})

	trigger, _ := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": theme},
	})
	w.Header().Set("HX-Trigger", string(trigger))
	w.WriteHeader(http.StatusOK)
}
