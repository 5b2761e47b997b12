package editor

import (
	"sync"
)

// Registry tracks the style condition page the user is editing. Only one
// page is open at a time.
type Registry struct {
	mu   sync.RWMutex
	open string
}

// NewRegistry creates a registry with nothing open
func NewRegistry() *Registry {
	return &Registry{}
}

// Open marks conditionID as the page being edited
func (r *Registry) Open(conditionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = conditionID
}

// Close closes conditionID if it is the open page
func (r *Registry) Close(conditionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open == conditionID {
		r.open = ""
	}
}

// Current returns the open condition
func (r *Registry) Current() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open, r.open != ""
}

func (r *Registry) IsOpenForEdit(conditionID string) bool {
	if conditionID == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open == conditionID
}
