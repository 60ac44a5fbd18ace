package store_test

import (
	"errors"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

func TestValidateTool(t *testing.T) {
	valid := &store.Tool{
		Name:        "Chatbot Pro",
		Category:    "Chat",
		Description: "A chatbot.",
		URL:         "https://example.com",
	}
	if err := store.ValidateTool(valid); err != nil {
		t.Errorf("valid tool: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*store.Tool)
		want error
	}{
		{"empty name", func(x *store.Tool) { x.Name = " " }, store.ErrToolInvalid},
		{"empty category", func(x *store.Tool) { x.Category = "" }, store.ErrToolInvalid},
		{"empty description", func(x *store.Tool) { x.Description = "" }, store.ErrToolInvalid},
		{"empty url", func(x *store.Tool) { x.URL = "" }, store.ErrToolInvalid},
		{"relative url", func(x *store.Tool) { x.URL = "/somewhere" }, store.ErrURLInvalid},
		{"bad scheme", func(x *store.Tool) { x.URL = "ftp://example.com" }, store.ErrURLInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tool := *valid
			tc.mut(&tool)
			if err := store.ValidateTool(&tool); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSplitFeatures(t *testing.T) {
	got := store.SplitFeatures(" chat , api ,, images ")
	if len(got) != 3 || got[0] != "chat" || got[1] != "api" || got[2] != "images" {
		t.Errorf("features = %v, want [chat api images]", got)
	}

	if got := store.SplitFeatures(""); len(got) != 0 {
		t.Errorf("features = %v, want empty", got)
	}
}
