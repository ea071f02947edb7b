package stockpile

// slot is one sparse-array cell: it exclusively owns zero or one component.
// The occupied discriminant, not the component value, is the source of truth.
type slot struct {
	component Component
	occupied  bool
}

// store holds every component of one tag: a sparse slot array indexed by
// entity id plus the dense, insertion-ordered list of ids currently holding
// the tag. Invariant: an id appears in dense exactly when its slot is
// occupied, and at most once.
type store struct {
	slots []slot
	dense []EntityID
}

func newStore(maxEntities int) store {
	return store{
		slots: make([]slot, maxEntities),
	}
}

// add stores c for id, reporting whether an existing component was replaced.
// On replace the old component is disposed and the dense list is untouched,
// so the id keeps its iteration position.
func (s *store) add(id EntityID, c Component) (replaced bool) {
	sl := &s.slots[id]
	if sl.occupied {
		dispose(sl.component)
		sl.component = c
		return true
	}
	sl.component = c
	sl.occupied = true
	s.dense = append(s.dense, id)
	return false
}

// remove disposes and clears the component for id, reporting whether a
// component was present. The dense erase is positional: surviving entries
// keep their relative order.
func (s *store) remove(id EntityID) bool {
	sl := &s.slots[id]
	if !sl.occupied {
		return false
	}
	dispose(sl.component)
	sl.component = nil
	sl.occupied = false
	for i, other := range s.dense {
		if other == id {
			s.dense = append(s.dense[:i], s.dense[i+1:]...)
			break
		}
	}
	return true
}

func (s *store) get(id EntityID) (Component, bool) {
	sl := s.slots[id]
	if !sl.occupied {
		return nil, false
	}
	return sl.component, true
}

func (s *store) len() int {
	return len(s.dense)
}
