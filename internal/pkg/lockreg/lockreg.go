// Package lockreg hands out one mutex per owner so that read-modify-write cycles on an
// owner's equipment state and gold balance never interleave inside the process.
package lockreg

import "sync"

// Registry maps owner IDs to mutexes. The zero value is ready to use.
type Registry struct {
	locks sync.Map
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Get returns the mutex guarding ownerID
func (r *Registry) Get(ownerID string) *sync.Mutex {
	val, _ := r.locks.LoadOrStore(ownerID, &sync.Mutex{})
	return val.(*sync.Mutex)
}

// Lock acquires the owner's mutex and returns the matching unlock func
func (r *Registry) Lock(ownerID string) func() {
	mu := r.Get(ownerID)
	mu.Lock()
	return mu.Unlock
}
