package stockpile

// Tag returns the dense tag assigned to this component type.
func (c ComponentType[T]) Tag() ComponentTag {
	return c.tag
}

// Wrap pairs a component value with this type's tag, for CreateWith.
func (c ComponentType[T]) Wrap(v *T) Tagged {
	if v == nil {
		return Tagged{Tag: c.tag}
	}
	return Tagged{Tag: c.tag, Component: any(v).(Component)}
}

// Attach stores v for the entity, with the registry's usual replace
// semantics. A nil v is absorbed like any absent component.
func (c ComponentType[T]) Attach(r Registry, id EntityID, v *T) {
	if v == nil {
		return
	}
	r.Add(c.tag, id, any(v).(Component))
}

// Get retrieves the stored component for the entity, or false when the
// entity is invalid or holds no component of this type.
func (c ComponentType[T]) Get(r Registry, id EntityID) (*T, bool) {
	stored, ok := r.Get(c.tag, id)
	if !ok {
		return nil, false
	}
	v, ok := any(stored).(*T)
	return v, ok
}

// GetOr retrieves the stored component by value, or the zero T on a miss.
// The zero value is freshly returned each call, so writing to it never
// corrupts later misses; callers distinguish via the empty predicate.
func (c ComponentType[T]) GetOr(r Registry, id EntityID) T {
	if v, ok := c.Get(r, id); ok {
		return *v
	}
	var zero T
	return zero
}

// Remove detaches this type's component from the entity.
func (c ComponentType[T]) Remove(r Registry, id EntityID) {
	r.Remove(c.tag, id)
}

// Has reports whether the entity holds a component of this type.
func (c ComponentType[T]) Has(r Registry, id EntityID) bool {
	return r.Has(c.tag, id)
}
