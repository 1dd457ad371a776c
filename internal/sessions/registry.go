package sessions

import (
	"sync"

	"github.com/quickbite-app/quickbite-backend/internal/cart"
)

// Registry hands out one cart store per client session. Carts live for the
// process lifetime only; there is no persistence or cross-device sync.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*cart.Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{carts: map[string]*cart.Store{}}
}

// Cart returns the store bound to the session id, creating it on first use.
func (r *Registry) Cart(sessionID string) *cart.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.carts[sessionID]
	if !ok {
		store = cart.NewStore()
		r.carts[sessionID] = store
	}
	return store
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
