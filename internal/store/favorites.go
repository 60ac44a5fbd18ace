package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Favorite represents a row in the user_favorites table. The relation's
// existence is the only state; it carries no attributes beyond the timestamp.
type Favorite struct {
	UserID    string    `db:"user_id"`
	ToolID    string    `db:"tool_id"`
	CreatedAt time.Time `db:"created_at"`
}

// FavoriteStore is the sqlx-backed implementation of FavoriteStoreIface.
type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

func (s *FavoriteStore) q(query string) string { return s.db.Rebind(query) }

// Add records that userID favorited toolID. Re-adding an existing favorite is
// a no-op, so toggles confirmed out of order stay harmless.
func (s *FavoriteStore) Add(ctx context.Context, userID, toolID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Check-then-insert keeps the statement portable; ON CONFLICT syntax
	// differs across the supported drivers. The primary key backs the race.
	var count int
	err = tx.GetContext(ctx, &count, s.q(`
		SELECT COUNT(*) FROM user_favorites WHERE user_id = ? AND tool_id = ?
	`), userID, toolID)
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO user_favorites (user_id, tool_id, created_at)
			VALUES (?, ?, ?)
		`), userID, toolID, time.Now().UTC())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Remove deletes the (user, tool) favorite relation. Removing an absent
// favorite is a no-op.
func (s *FavoriteStore) Remove(ctx context.Context, userID, toolID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM user_favorites WHERE user_id = ? AND tool_id = ?
	`), userID, toolID)
	return err
}

// ListToolIDs returns the identifiers of all tools favorited by userID.
func (s *FavoriteStore) ListToolIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids, s.q(`
		SELECT tool_id FROM user_favorites WHERE user_id = ?
	`), userID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListTools returns the full tool records favorited by userID, most recently
// favorited first.
func (s *FavoriteStore) ListTools(ctx context.Context, userID string) ([]*Tool, error) {
	var tools []*Tool
	err := s.db.SelectContext(ctx, &tools, s.q(`
		SELECT t.* FROM ai_tools t
		INNER JOIN user_favorites f ON f.tool_id = t.id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC
	`), userID)
	if err != nil {
		return nil, err
	}
	return tools, nil
}

// IsFavorited checks whether the (user, tool) relation exists.
func (s *FavoriteStore) IsFavorited(ctx context.Context, userID, toolID string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.q(`
		SELECT COUNT(*) FROM user_favorites WHERE user_id = ? AND tool_id = ?
	`), userID, toolID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
