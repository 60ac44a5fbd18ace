package browse_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/browse"
)

// fakeAuthSource is a controllable AuthSource.
type fakeAuthSource struct {
	mu        sync.Mutex
	user      *browse.Identity
	role      string
	roleErr   error
	listeners []func()
}

func (f *fakeAuthSource) CurrentUser(ctx context.Context) (*browse.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user, nil
}

func (f *fakeAuthSource) Role(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.role, f.roleErr
}

func (f *fakeAuthSource) OnAuthChange(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
	idx := len(f.listeners) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listeners[idx] = nil
	}
}

// signIn flips the auth state and fires the change listeners, like a session
// transition would.
func (f *fakeAuthSource) signIn(user *browse.Identity, role string) {
	f.mu.Lock()
	f.user = user
	f.role = role
	listeners := make([]func(), len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()
	for _, fn := range listeners {
		if fn != nil {
			fn()
		}
	}
}

func (f *fakeAuthSource) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, fn := range f.listeners {
		if fn != nil {
			n++
		}
	}
	return n
}

func TestSessionObserver_SignedOut(t *testing.T) {
	src := &fakeAuthSource{}
	obs, err := browse.ObserveSession(context.Background(), src)
	if err != nil {
		t.Fatalf("ObserveSession: %v", err)
	}
	defer obs.Close()

	snap := obs.Snapshot()
	if snap.User != nil {
		t.Error("expected signed-out session")
	}
	if snap.IsAdmin() {
		t.Error("signed-out session must not be admin")
	}
}

func TestSessionObserver_UnresolvedRoleIsOrdinary(t *testing.T) {
	src := &fakeAuthSource{
		user:    &browse.Identity{ID: "u1", Email: "admin@example.com"},
		roleErr: context.DeadlineExceeded,
	}
	obs, err := browse.ObserveSession(context.Background(), src)
	if err != nil {
		t.Fatalf("ObserveSession: %v", err)
	}
	defer obs.Close()

	snap := obs.Snapshot()
	if snap.User == nil {
		t.Fatal("expected signed-in session")
	}
	if snap.IsAdmin() {
		t.Error("an unresolved role must gate exactly like non-admin")
	}
}

func TestSessionObserver_AdminRole(t *testing.T) {
	src := &fakeAuthSource{
		user: &browse.Identity{ID: "u1"},
		role: "admin",
	}
	obs, err := browse.ObserveSession(context.Background(), src)
	if err != nil {
		t.Fatalf("ObserveSession: %v", err)
	}
	defer obs.Close()

	if !obs.Snapshot().IsAdmin() {
		t.Error("expected admin session")
	}
}

func TestSessionObserver_ReresolvesOnAuthChange(t *testing.T) {
	src := &fakeAuthSource{}
	obs, err := browse.ObserveSession(context.Background(), src)
	if err != nil {
		t.Fatalf("ObserveSession: %v", err)
	}
	defer obs.Close()

	src.signIn(&browse.Identity{ID: "u1"}, "admin")

	snap := obs.Snapshot()
	if snap.User == nil || !snap.IsAdmin() {
		t.Error("expected the observer to pick up the sign-in transition")
	}

	src.signIn(nil, "")
	if snap = obs.Snapshot(); snap.User != nil {
		t.Error("expected the observer to pick up the sign-out transition")
	}
}

func TestSessionObserver_CloseUnsubscribes(t *testing.T) {
	src := &fakeAuthSource{}
	obs, err := browse.ObserveSession(context.Background(), src)
	if err != nil {
		t.Fatalf("ObserveSession: %v", err)
	}

	if src.listenerCount() != 1 {
		t.Fatalf("listeners = %d, want 1", src.listenerCount())
	}
	obs.Close()
	if src.listenerCount() != 0 {
		t.Errorf("listeners after Close = %d, want 0", src.listenerCount())
	}
}
