package profile

import (
	"runtime"
	"sync"
	"weak"

	"github.com/google/uuid"
)

// Registry is a lookup table of live profiles keyed by identity. It holds
// profiles through weak pointers only: registering a profile never keeps it
// alive, and its slot is purged automatically once the profile is collected.
type Registry struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]weak.Pointer[Profile]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[uuid.UUID]weak.Pointer[Profile]),
	}
}

// Add registers a profile under its identity. Re-adding a live profile is a
// no-op beyond refreshing the slot.
func (r *Registry) Add(p *Profile) {
	if p == nil {
		return
	}

	r.mu.Lock()
	_, existed := r.profiles[p.id]
	r.profiles[p.id] = weak.Make(p)
	r.mu.Unlock()

	if !existed {
		runtime.AddCleanup(p, func(id uuid.UUID) {
			r.mu.Lock()
			// Identities are unique per profile, so the slot can only
			// belong to the collected instance.
			delete(r.profiles, id)
			r.mu.Unlock()
		}, p.id)
	}
}

// Get returns the live profile registered under id. A profile that has been
// collected but not yet cleaned up reads as absent.
func (r *Registry) Get(id uuid.UUID) (*Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wp, ok := r.profiles[id]
	if !ok {
		return nil, false
	}
	p := wp.Value()
	if p == nil {
		delete(r.profiles, id)
		return nil, false
	}
	return p, true
}

// Remove drops the slot for id, if present.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
}

// Len returns the number of registry slots. Slots of collected profiles
// disappear shortly after garbage collection.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.profiles)
}
