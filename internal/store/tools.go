package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Features is an ordered list of feature strings stored as a JSON text column,
// which is portable across all three supported drivers.
type Features []string

// Value implements driver.Valuer.
func (f Features) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *Features) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(f))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(f))
	default:
		return fmt.Errorf("features: cannot scan %T", src)
	}
}

// Tool represents a row in the ai_tools table. ID is immutable once created.
type Tool struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	URL         string         `db:"url"`
	LogoURL     sql.NullString `db:"logo_url"`
	Features    Features       `db:"features"`
	IsFeatured  bool           `db:"is_featured"`
	SortOrder   int            `db:"sort_order"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// SortMode selects the ordering of a tool listing.
type SortMode string

const (
	// SortFeatured orders by sort_order ascending, ties broken by newest first.
	SortFeatured SortMode = "featured"
	// SortNewest orders by creation time descending.
	SortNewest SortMode = "newest"
	// SortNameAsc and SortNameDesc order alphabetically by name.
	SortNameAsc  SortMode = "name-asc"
	SortNameDesc SortMode = "name-desc"
)

// ParseSortMode maps a user-supplied string to a SortMode, defaulting to featured.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNewest, SortNameAsc, SortNameDesc:
		return SortMode(s)
	default:
		return SortFeatured
	}
}

// ToolQuery is the full input state of one listing request: free-text search,
// category restriction, sort mode, and an optional result cap. The zero value
// lists the whole catalog in featured order.
type ToolQuery struct {
	Search   string
	Category string // empty means all categories
	Sort     SortMode
	Limit    int // 0 means no cap
}

func (q ToolQuery) orderBy() string {
	switch q.Sort {
	case SortNewest:
		return "created_at DESC"
	case SortNameAsc:
		return "LOWER(name) ASC"
	case SortNameDesc:
		return "LOWER(name) DESC"
	default:
		return "sort_order ASC, created_at DESC"
	}
}

// ToolStore is the sqlx-backed implementation of ToolStoreIface.
type ToolStore struct {
	db *sqlx.DB
}

func NewToolStore(db *sqlx.DB) *ToolStore {
	return &ToolStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *ToolStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new tool and returns the stored record.
func (s *ToolStore) Create(ctx context.Context, t *Tool) (*Tool, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO ai_tools (id, name, category, description, url, logo_url, features, is_featured, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), id, t.Name, t.Category, t.Description, t.URL, t.LogoURL, t.Features, t.IsFeatured, t.SortOrder, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the tool matching id, or ErrNotFound.
func (s *ToolStore) GetByID(ctx context.Context, id string) (*Tool, error) {
	var t Tool
	err := s.db.GetContext(ctx, &t, s.q(`SELECT * FROM ai_tools WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns tools matching q. Search matches name OR description as a
// case-insensitive substring; category is an exact match; both filters are
// conjunctive. A positive Limit caps the result count after filtering/sorting.
func (s *ToolStore) List(ctx context.Context, q ToolQuery) ([]*Tool, error) {
	query := `SELECT * FROM ai_tools`
	var where []string
	var args []interface{}

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, `(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`)
		args = append(args, pattern, pattern)
	}
	if q.Category != "" {
		where = append(where, `category = ?`)
		args = append(args, q.Category)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY ` + q.orderBy()
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	var tools []*Tool
	if err := s.db.SelectContext(ctx, &tools, s.q(query), args...); err != nil {
		return nil, err
	}
	return tools, nil
}

// Categories returns the distinct set of categories across all tools,
// ordered alphabetically, for the filter dropdown.
func (s *ToolStore) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	err := s.db.SelectContext(ctx, &cats,
		`SELECT DISTINCT category FROM ai_tools ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// Count returns the total number of catalog entries.
func (s *ToolStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM ai_tools`)
	return n, err
}

// Update modifies an existing tool's mutable fields. The ID is immutable.
func (s *ToolStore) Update(ctx context.Context, t *Tool) (*Tool, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE ai_tools
		SET name = ?, category = ?, description = ?, url = ?, logo_url = ?,
		    features = ?, is_featured = ?, sort_order = ?, updated_at = ?
		WHERE id = ?
	`), t.Name, t.Category, t.Description, t.URL, t.LogoURL, t.Features, t.IsFeatured, t.SortOrder, now, t.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, t.ID)
}

// Delete removes a tool by ID along with its favorites and reviews. The
// dependent rows are deleted explicitly rather than relying on FK cascades,
// which SQLite only enforces when the foreign_keys pragma is on.
func (s *ToolStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM user_favorites WHERE tool_id = ?`,
		`DELETE FROM reviews WHERE tool_id = ?`,
		`DELETE FROM ai_tools WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
