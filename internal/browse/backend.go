// Package browse implements the catalog interaction model: debounced query
// composition, a listing view model with a stale-response guard, optimistic
// favorite toggling, and session/role observation. It is UI-agnostic; the web
// handlers and the HTTP client both drive it through the Backend and
// AuthSource interfaces.
package browse

import (
	"context"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Backend is the remote-data surface the interaction model runs against. It is
// implemented by StoreBackend (in-process) and by client.Client (over HTTP).
type Backend interface {
	ListTools(ctx context.Context, q store.ToolQuery) ([]*store.Tool, error)
	Categories(ctx context.Context) ([]string, error)
	FavoriteIDs(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, toolID string) error
	RemoveFavorite(ctx context.Context, toolID string) error
}

// Identity is the signed-in user as seen by the interaction model.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
}

// AuthSource exposes the current authentication state and change notification.
type AuthSource interface {
	// CurrentUser returns the signed-in identity, or nil when signed out.
	CurrentUser(ctx context.Context) (*Identity, error)
	// Role returns the current user's role, or "" when it cannot be resolved.
	Role(ctx context.Context) (string, error)
	// OnAuthChange registers fn to run on every sign-in/sign-out transition
	// and returns an unsubscribe function.
	OnAuthChange(fn func()) (unsubscribe func())
}

// StoreBackend adapts the SQL stores to the Backend interface for in-process
// use. UserID may be empty for an anonymous session; favorite operations are
// then no-ops and FavoriteIDs returns an empty set.
type StoreBackend struct {
	Tools     store.ToolStoreIface
	Favorites store.FavoriteStoreIface
	UserID    string
}

func (b *StoreBackend) ListTools(ctx context.Context, q store.ToolQuery) ([]*store.Tool, error) {
	return b.Tools.List(ctx, q)
}

func (b *StoreBackend) Categories(ctx context.Context) ([]string, error) {
	return b.Tools.Categories(ctx)
}

func (b *StoreBackend) FavoriteIDs(ctx context.Context) ([]string, error) {
	if b.UserID == "" {
		return nil, nil
	}
	return b.Favorites.ListToolIDs(ctx, b.UserID)
}

func (b *StoreBackend) AddFavorite(ctx context.Context, toolID string) error {
	if b.UserID == "" {
		return nil
	}
	return b.Favorites.Add(ctx, b.UserID, toolID)
}

func (b *StoreBackend) RemoveFavorite(ctx context.Context, toolID string) error {
	if b.UserID == "" {
		return nil
	}
	return b.Favorites.Remove(ctx, b.UserID, toolID)
}
