package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Role classification. Anything that is not RoleAdmin is an ordinary user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a row in the users table. Local accounts carry a bcrypt
// password hash; SSO accounts carry the OIDC (provider, subject) pair instead.
type User struct {
	ID           string    `db:"id"`
	Provider     string    `db:"provider"`
	Subject      string    `db:"subject"`
	Email        string    `db:"email"`
	DisplayName  string    `db:"display_name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// roleFor assigns the admin role when the configured admin email signs up.
func roleFor(email, adminEmail string) string {
	if adminEmail != "" && strings.EqualFold(email, adminEmail) {
		return RoleAdmin
	}
	return RoleUser
}

// SignUp creates a local email/password account. Returns ErrEmailTaken when an
// account with the email already exists.
func (s *UserStore) SignUp(ctx context.Context, email, password, displayName, adminEmail string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if err != ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = email[:strings.IndexByte(email+"@", '@')]
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (id, provider, subject, email, display_name, password_hash, role, created_at, updated_at)
		VALUES (?, 'local', ?, ?, ?, ?, ?, ?, ?)
	`), id, id, email, displayName, string(hash), roleFor(email, adminEmail), now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Authenticate verifies email/password credentials and returns the user.
// Returns ErrInvalidCredentials for an unknown email, an SSO-only account, or
// a wrong password, without distinguishing between them.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UpsertOIDC creates or updates a user record on SSO login. Role is assigned on
// first insert only; returning users keep whatever role an admin last set.
func (s *UserStore) UpsertOIDC(ctx context.Context, provider, subject, email, displayName, adminEmail string) (*User, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Select-then-write keeps the statements portable; ON CONFLICT syntax
	// differs across the supported drivers.
	var existing User
	err = tx.GetContext(ctx, &existing, s.q(`
		SELECT * FROM users WHERE provider = ? AND subject = ?
	`), provider, subject)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO users (id, provider, subject, email, display_name, password_hash, role, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, '', ?, ?, ?)
		`), uuid.New().String(), provider, subject, strings.ToLower(email), displayName, roleFor(email, adminEmail), now, now)
	case err == nil:
		_, err = tx.ExecContext(ctx, s.q(`
			UPDATE users SET email = ?, display_name = ?, updated_at = ? WHERE id = ?
		`), strings.ToLower(email), displayName, now, existing.ID)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var u User
	err = s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE provider = ? AND subject = ?`), provider, subject)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user matching email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE email = ?`), email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user matching id, or ErrNotFound.
func (s *UserStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns all users ordered by display name.
func (s *UserStore) ListAll(ctx context.Context) ([]*User, error) {
	var users []*User
	err := s.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY display_name ASC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of accounts.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}

// UpdateRole sets the role for the given user and returns the updated record.
func (s *UserStore) UpdateRole(ctx context.Context, id, role string) (*User, error) {
	_, err := s.db.ExecContext(ctx, s.q(`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`),
		role, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
