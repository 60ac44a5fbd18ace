package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Post represents a row in the posts table with the author's name joined.
type Post struct {
	ID         string    `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	UserID     string    `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`
	AuthorName string    `db:"author_name"`
}

// PostStore is the sqlx-backed implementation of PostStoreIface.
type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new blog post authored by userID.
func (s *PostStore) Create(ctx context.Context, title, content, userID string) (*Post, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO posts (id, title, content, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, title, content, userID, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the post matching id with its author name, or ErrNotFound.
func (s *PostStore) GetByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := s.db.GetContext(ctx, &p, s.q(`
		SELECT p.*, COALESCE(u.display_name, '') AS author_name
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.id = ?
	`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns all posts, newest first, with author names joined.
func (s *PostStore) ListAll(ctx context.Context) ([]*Post, error) {
	var posts []*Post
	err := s.db.SelectContext(ctx, &posts, s.q(`
		SELECT p.*, COALESCE(u.display_name, '') AS author_name
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`))
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post by ID. Authorization (author or admin) is checked by
// the caller.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM posts WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
