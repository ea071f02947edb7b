package stockpile

import "iter"

// All returns the dense id list for tag as a read-only view, in insertion
// order. Mutating entities while ranging over the view is undefined; use
// Snapshot when destruction may happen mid-loop.
func (r *registry) All(tag ComponentTag) []EntityID {
	if !r.allocated || int(tag) >= len(r.stores) {
		return nil
	}
	return r.stores[tag].dense
}

// Snapshot returns a copy of the dense id list for tag, safe to iterate
// while destroying or mutating entities.
func (r *registry) Snapshot(tag ComponentTag) []EntityID {
	view := r.All(tag)
	if view == nil {
		return nil
	}
	snap := make([]EntityID, len(view))
	copy(snap, view)
	return snap
}

// Entities returns an iterator over the dense id list for tag. It carries
// the same mid-iteration mutation contract as All.
func (r *registry) Entities(tag ComponentTag) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range r.All(tag) {
			if !yield(id) {
				return
			}
		}
	}
}
