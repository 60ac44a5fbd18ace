package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when signing up with an email that already has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned when email/password authentication fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ToolStoreIface exposes all tool catalog operations.
// No handler queries the DB directly; all access goes through this interface.
type ToolStoreIface interface {
	Create(ctx context.Context, t *Tool) (*Tool, error)
	GetByID(ctx context.Context, id string) (*Tool, error)
	List(ctx context.Context, q ToolQuery) ([]*Tool, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, t *Tool) (*Tool, error)
	Delete(ctx context.Context, id string) error
}

// FavoriteStoreIface exposes the (user, tool) favorite relation.
type FavoriteStoreIface interface {
	Add(ctx context.Context, userID, toolID string) error
	Remove(ctx context.Context, userID, toolID string) error
	ListToolIDs(ctx context.Context, userID string) ([]string, error)
	ListTools(ctx context.Context, userID string) ([]*Tool, error)
}

// ReviewStoreIface exposes star ratings and comments on tools.
type ReviewStoreIface interface {
	Upsert(ctx context.Context, toolID, userID string, rating int, comment string) (*Review, error)
	ListByTool(ctx context.Context, toolID string) ([]*Review, error)
	AverageForTool(ctx context.Context, toolID string) (float64, int, error)
}

// PostStoreIface exposes blog post operations.
type PostStoreIface interface {
	Create(ctx context.Context, title, content, userID string) (*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	Delete(ctx context.Context, id string) error
}
