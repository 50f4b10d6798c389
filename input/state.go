package input

import (
	"sync"
	"time"
)

// HoldWindow is how long a key counts as held after its last terminal event.
// Terminals report key repeats but no key-up, so "held" is reconstructed
// from event recency
const HoldWindow = 150 * time.Millisecond

// State reconstructs held-key state from discrete terminal key events
type State struct {
	mu   sync.Mutex
	last map[Key]time.Time
}

// NewState creates an empty input state
func NewState() *State {
	return &State{last: make(map[Key]time.Time)}
}

// Press records a key event at the given time
func (st *State) Press(k Key, at time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.last[k] = at
}

// Snapshot rebuilds dst with every key whose last event is within the hold
// window. Expired keys are dropped from the internal map
func (st *State) Snapshot(now time.Time, dst Set) {
	st.mu.Lock()
	defer st.mu.Unlock()

	dst.Clear()
	for k, at := range st.last {
		if now.Sub(at) <= HoldWindow {
			dst.Add(k)
		} else {
			delete(st.last, k)
		}
	}
}
