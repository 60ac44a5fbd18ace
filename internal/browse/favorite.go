package browse

import (
	"context"
	"sync"
)

// FavoriteToggle is the per-tool idle/pending machine behind a favorite
// button. Toggling flips the displayed state immediately, issues the write,
// and reconciles: the parent set is updated only on confirmed success, and a
// failed write rolls the displayed state back and records the error locally.
// Toggles arriving while a write is in flight are dropped.
type FavoriteToggle struct {
	toolID  string
	backend Backend
	vm      *ViewModel

	mu        sync.Mutex
	pending   bool
	displayed bool
	lastErr   error
}

// NewFavoriteToggle creates a toggle for toolID whose initial displayed state
// comes from the parent view model's confirmed set.
func NewFavoriteToggle(toolID string, backend Backend, vm *ViewModel) *FavoriteToggle {
	return &FavoriteToggle{
		toolID:    toolID,
		backend:   backend,
		vm:        vm,
		displayed: vm.IsFavorite(toolID),
	}
}

// Toggle runs one flip. For an unauthenticated session it is a no-op. The
// returned error is also retained and readable via Err until the next toggle.
func (t *FavoriteToggle) Toggle(ctx context.Context) error {
	if !t.vm.SignedIn() {
		return nil
	}

	t.mu.Lock()
	if t.pending {
		t.mu.Unlock()
		return nil
	}
	t.pending = true
	t.lastErr = nil
	was := t.displayed
	t.displayed = !was // optimistic
	t.mu.Unlock()

	var err error
	if was {
		err = t.backend.RemoveFavorite(ctx, t.toolID)
	} else {
		err = t.backend.AddFavorite(ctx, t.toolID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = false
	if err != nil {
		t.displayed = was
		t.lastErr = err
		return err
	}
	t.vm.setFavorite(t.toolID, !was)
	return nil
}

// Displayed returns the state currently shown to the user, which may be ahead
// of the confirmed set while a write is pending.
func (t *FavoriteToggle) Displayed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.displayed
}

// Pending reports whether a write is in flight.
func (t *FavoriteToggle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Err returns the diagnostic from the last failed toggle, if any.
func (t *FavoriteToggle) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
