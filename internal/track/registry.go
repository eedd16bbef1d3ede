package track

type key struct {
	kind Kind
	role Role
}

// Registry maps (kind, role) to the live track handle, if any. Owned by the
// root model and mutated only on the UI goroutine, so no locking.
type Registry struct {
	tracks map[key]*Track
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tracks: make(map[key]*Track)}
}

// Add registers a track, replacing any previous handle for the same slot.
func (r *Registry) Add(t *Track) {
	r.tracks[key{t.kind, t.role}] = t
}

// Remove drops the handle for the slot. Removing an absent slot is a no-op.
func (r *Registry) Remove(kind Kind, role Role) {
	delete(r.tracks, key{kind, role})
}

// Lookup returns the live track for the slot, or nil when absent. A nil
// result is the expected steady state before the bot starts speaking, not an
// error.
func (r *Registry) Lookup(kind Kind, role Role) *Track {
	return r.tracks[key{kind, role}]
}

// Has reports whether a live track exists for the slot.
func (r *Registry) Has(kind Kind, role Role) bool {
	_, ok := r.tracks[key{kind, role}]
	return ok
}
