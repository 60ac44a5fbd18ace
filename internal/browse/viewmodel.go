package browse

import (
	"context"
	"sync"

	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

// ViewModel owns the listing state: the current tool slice, the category set,
// the caller's favorite IDs, and loading/error flags. Fetches replace the tool
// slice wholesale. Responses are tagged with a monotonically increasing
// sequence; a response that arrives after a newer one has been applied is
// discarded, so overlapping fetches can never leave stale results on screen.
type ViewModel struct {
	backend Backend

	mu         sync.Mutex
	tools      []*store.Tool
	categories []string
	favorites  map[string]bool
	signedIn   bool
	loading    bool
	err        error

	issued  uint64 // last sequence handed to a fetch
	applied uint64 // highest sequence whose response was applied
}

// Snapshot is a point-in-time copy of the view model state.
type Snapshot struct {
	Tools      []*store.Tool
	Categories []string
	Favorites  map[string]bool
	Loading    bool
	Err        error
}

// NewViewModel creates a ViewModel over backend.
func NewViewModel(backend Backend) *ViewModel {
	return &ViewModel{
		backend:   backend,
		favorites: make(map[string]bool),
	}
}

// Mount resolves the category list and, for a signed-in session, the caller's
// favorite IDs. It is called once before the first fetch.
func (vm *ViewModel) Mount(ctx context.Context, signedIn bool) error {
	cats, err := vm.backend.Categories(ctx)
	if err != nil {
		return err
	}

	favorites := make(map[string]bool)
	if signedIn {
		ids, err := vm.backend.FavoriteIDs(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			favorites[id] = true
		}
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.categories = cats
	vm.favorites = favorites
	vm.signedIn = signedIn
	return nil
}

// Fetch runs one listing request for q and applies the response under the
// sequence guard. Safe for concurrent use; whichever call was issued last
// wins regardless of response ordering.
func (vm *ViewModel) Fetch(ctx context.Context, q store.ToolQuery) {
	vm.mu.Lock()
	vm.issued++
	seq := vm.issued
	vm.loading = true
	vm.mu.Unlock()

	tools, err := vm.backend.ListTools(ctx, q)
	vm.apply(seq, tools, err)
}

func (vm *ViewModel) apply(seq uint64, tools []*store.Tool, err error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if seq <= vm.applied {
		metrics.StaleResultsDiscardedTotal.Inc()
		return
	}
	vm.applied = seq

	if err != nil {
		// Keep the previous list visible; surface the failure alongside it.
		vm.err = err
	} else {
		vm.tools = tools
		vm.err = nil
	}
	if seq == vm.issued {
		vm.loading = false
	}
}

// Snapshot returns a copy of the current state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	tools := make([]*store.Tool, len(vm.tools))
	copy(tools, vm.tools)
	cats := make([]string, len(vm.categories))
	copy(cats, vm.categories)
	favs := make(map[string]bool, len(vm.favorites))
	for id, on := range vm.favorites {
		favs[id] = on
	}
	return Snapshot{
		Tools:      tools,
		Categories: cats,
		Favorites:  favs,
		Loading:    vm.loading,
		Err:        vm.err,
	}
}

// SignedIn reports whether Mount observed a signed-in session.
func (vm *ViewModel) SignedIn() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.signedIn
}

// IsFavorite reports whether toolID is in the confirmed favorite set.
func (vm *ViewModel) IsFavorite(toolID string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.favorites[toolID]
}

// setFavorite records a confirmed favorite state change from a toggle.
func (vm *ViewModel) setFavorite(toolID string, on bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if on {
		vm.favorites[toolID] = true
	} else {
		delete(vm.favorites, toolID)
	}
}
