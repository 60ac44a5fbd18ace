package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Review represents a row in the reviews table, unique per (tool, user) pair.
// AuthorName is joined from the users table for display.
type Review struct {
	ID         string    `db:"id"`
	ToolID     string    `db:"tool_id"`
	UserID     string    `db:"user_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	AuthorName string    `db:"author_name"`
}

// ReviewStore is the sqlx-backed implementation of ReviewStoreIface.
type ReviewStore struct {
	db *sqlx.DB
}

func NewReviewStore(db *sqlx.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) q(query string) string { return s.db.Rebind(query) }

// Upsert creates or replaces the caller's review of a tool. A later submission
// overwrites the prior rating and comment rather than creating a duplicate.
func (s *ReviewStore) Upsert(ctx context.Context, toolID, userID string, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// ON CONFLICT syntax differs across the supported drivers, so upsert as
	// select-then-write; the UNIQUE (tool_id, user_id) index backs the race.
	var existingID string
	err = tx.GetContext(ctx, &existingID, s.q(`
		SELECT id FROM reviews WHERE tool_id = ? AND user_id = ?
	`), toolID, userID)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO reviews (id, tool_id, user_id, rating, comment, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`), uuid.New().String(), toolID, userID, rating, comment, now, now)
	case err == nil:
		_, err = tx.ExecContext(ctx, s.q(`
			UPDATE reviews SET rating = ?, comment = ?, updated_at = ? WHERE id = ?
		`), rating, comment, now, existingID)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.getByPair(ctx, toolID, userID)
}

func (s *ReviewStore) getByPair(ctx context.Context, toolID, userID string) (*Review, error) {
	var r Review
	err := s.db.GetContext(ctx, &r, s.q(`
		SELECT r.*, COALESCE(u.display_name, '') AS author_name
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.tool_id = ? AND r.user_id = ?
	`), toolID, userID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByTool returns all reviews of a tool, newest first, with author names joined.
func (s *ReviewStore) ListByTool(ctx context.Context, toolID string) ([]*Review, error) {
	var reviews []*Review
	err := s.db.SelectContext(ctx, &reviews, s.q(`
		SELECT r.*, COALESCE(u.display_name, '') AS author_name
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.tool_id = ?
		ORDER BY r.created_at DESC
	`), toolID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageForTool returns the mean rating and review count for a tool.
// An unreviewed tool averages to zero.
func (s *ReviewStore) AverageForTool(ctx context.Context, toolID string) (float64, int, error) {
	var row struct {
		Avg   float64 `db:"avg_rating"`
		Count int     `db:"review_count"`
	}
	err := s.db.GetContext(ctx, &row, s.q(`
		SELECT COALESCE(AVG(CAST(rating AS REAL)), 0) AS avg_rating, COUNT(*) AS review_count
		FROM reviews WHERE tool_id = ?
	`), toolID)
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
