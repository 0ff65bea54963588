package carousel

import (
	"maps"
	"sync"
)

// VisibilitySet records which entries render their full content. An entry
// can only go from hidden to visible; nothing marks it hidden again.
type VisibilitySet struct {
	mu      sync.RWMutex
	visible map[string]bool
}

// NewVisibilitySet creates an entry for every id, all set to initial.
func NewVisibilitySet(ids []string, initial bool) *VisibilitySet {
	v := &VisibilitySet{visible: make(map[string]bool, len(ids))}
	for _, id := range ids {
		v.visible[id] = initial
	}
	return v
}

// Mark makes id visible. It returns true only for the call that flipped
// it; repeats and unknown ids are no-ops.
func (v *VisibilitySet) Mark(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	visible, ok := v.visible[id]
	if !ok || visible {
		return false
	}
	v.visible[id] = true
	return true
}

func (v *VisibilitySet) Visible(id string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visible[id]
}

// Count returns the number of visible entries.
func (v *VisibilitySet) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n := 0
	for _, ok := range v.visible {
		if ok {
			n++
		}
	}
	return n
}

func (v *VisibilitySet) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.visible)
}

func (v *VisibilitySet) Snapshot() map[string]bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return maps.Clone(v.visible)
}
