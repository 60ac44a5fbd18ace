package browse

import (
	"context"
	"sync"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// Session is a snapshot of the observed authentication state. A nil User means
// signed out. Role may be empty while unresolved; IsAdmin treats that the same
// as an ordinary user, so nothing privileged shows before the role is known.
type Session struct {
	User *Identity
	Role string
}

// IsAdmin reports whether the session has a resolved admin role.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.Role == store.RoleAdmin
}

// SessionObserver tracks the auth source: it resolves the current user and
// role once up front and re-resolves both on every auth transition.
type SessionObserver struct {
	src   AuthSource
	unsub func()

	mu  sync.Mutex
	cur Session
}

// ObserveSession resolves the initial session state and installs the change
// listener. Close must be called to unsubscribe.
func ObserveSession(ctx context.Context, src AuthSource) (*SessionObserver, error) {
	o := &SessionObserver{src: src}
	if err := o.resolve(ctx); err != nil {
		return nil, err
	}
	o.unsub = src.OnAuthChange(func() {
		// A failed re-resolution leaves the previous snapshot in place.
		_ = o.resolve(context.Background())
	})
	return o, nil
}

func (o *SessionObserver) resolve(ctx context.Context) error {
	user, err := o.src.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var role string
	if user != nil {
		// Role resolution failure degrades to an ordinary-user session.
		role, _ = o.src.Role(ctx)
	}

	o.mu.Lock()
	o.cur = Session{User: user, Role: role}
	o.mu.Unlock()
	return nil
}

// Snapshot returns the current session state.
func (o *SessionObserver) Snapshot() Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cur
}

// Close unsubscribes from auth change notifications.
func (o *SessionObserver) Close() {
	if o.unsub != nil {
		o.unsub()
		o.unsub = nil
	}
}
