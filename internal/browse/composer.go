package browse

import (
	"sync"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/store"
)

// DefaultDebounce is the quiet period between the last input change and the
// dispatch of the composed query.
const DefaultDebounce = 300 * time.Millisecond

// Composer collapses rapid query edits into a single dispatch. Every change
// re-arms the timer; only the state present when the timer fires is sent, so
// N changes inside one quiet period produce exactly one dispatch carrying the
// final state.
type Composer struct {
	mu       sync.Mutex
	delay    time.Duration
	timer    *time.Timer
	current  store.ToolQuery
	dispatch func(store.ToolQuery)
	closed   bool
}

// NewComposer creates a Composer dispatching to fn after delay of quiet.
// A non-positive delay falls back to DefaultDebounce.
func NewComposer(delay time.Duration, fn func(store.ToolQuery)) *Composer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Composer{delay: delay, dispatch: fn}
}

// SetSearch updates the search text and re-arms the timer.
func (c *Composer) SetSearch(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Search = s
	c.rearm()
}

// SetCategory updates the category filter and re-arms the timer.
func (c *Composer) SetCategory(cat string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Category = cat
	c.rearm()
}

// SetSort updates the sort mode and re-arms the timer.
func (c *Composer) SetSort(mode store.SortMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Sort = mode
	c.rearm()
}

// Set replaces the whole query and re-arms the timer.
func (c *Composer) Set(q store.ToolQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = q
	c.rearm()
}

// Query returns the current (possibly not yet dispatched) query state.
func (c *Composer) Query() store.ToolQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Flush cancels any pending timer and dispatches the current state immediately.
func (c *Composer) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	q := c.current
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		c.dispatch(q)
	}
}

// Close cancels any pending dispatch. Subsequent Set calls are ignored.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// rearm must be called with c.mu held.
func (c *Composer) rearm() {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.fire)
}

func (c *Composer) fire() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	q := c.current
	c.mu.Unlock()
	c.dispatch(q)
}
