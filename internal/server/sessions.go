package server

import (
	"sync"

	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/result"
)

// sessionEntry pairs a controller with the lock that serializes access
// to it. Controllers are single-flow state machines; concurrent
// requests for the same session must not interleave.
type sessionEntry struct {
	mu   sync.Mutex
	ctrl *flow.Controller
	view *result.View
}

// sessionRegistry is the in-memory session table keyed by session id.
// Sessions live for the duration of one funnel run.
type sessionRegistry struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{entries: map[string]*sessionEntry{}}
}

func (r *sessionRegistry) add(ctrl *flow.Controller) *sessionEntry {
	entry := &sessionEntry{ctrl: ctrl}
	r.mu.Lock()
	r.entries[ctrl.Session().ID] = entry
	r.mu.Unlock()
	return entry
}

func (r *sessionRegistry) get(id string) (*sessionEntry, bool) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()
	return entry, ok
}
