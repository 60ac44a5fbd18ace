package store

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrToolInvalid is returned when a tool record is missing required fields.
	ErrToolInvalid = errors.New("tool requires name, category, description, and url")

	// ErrURLInvalid is returned when a tool URL is not an absolute http(s) URL.
	ErrURLInvalid = errors.New("url must be an absolute http or https URL")
)

// ValidateTool checks that t carries the required fields and a usable URL.
// It does NOT check uniqueness — names may legitimately collide.
func ValidateTool(t *Tool) error {
	if strings.TrimSpace(t.Name) == "" ||
		strings.TrimSpace(t.Category) == "" ||
		strings.TrimSpace(t.Description) == "" ||
		strings.TrimSpace(t.URL) == "" {
		return ErrToolInvalid
	}
	return ValidateToolURL(t.URL)
}

// ValidateToolURL checks that raw parses as an absolute http(s) URL.
func ValidateToolURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrURLInvalid
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrURLInvalid
	}
	return nil
}

// SplitFeatures turns a comma-separated feature string from the admin form
// into an ordered feature list, trimming and discarding empty entries.
func SplitFeatures(raw string) Features {
	parts := strings.Split(raw, ",")
	out := make(Features, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
