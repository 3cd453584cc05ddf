package cart

import "sync"

// Registry hands out one cart per shopper identity. Carts live in memory
// for the process lifetime and are never persisted.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Cart returns the cart for the given user, creating it on first use.
func (r *Registry) Cart(userID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[userID]
	if !ok {
		c = New()
		r.carts[userID] = c
	}
	return c
}
