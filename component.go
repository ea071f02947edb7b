package stockpile

import "reflect"

// Full reports whether c holds real data. It is the negation of the empty
// predicate, provided as a convenience for callers using zero-value misses.
func Full(c Component) bool {
	return !absent(c) && !c.IsEmpty()
}

// absent reports whether c carries no payload: a nil interface, or a typed
// nil pointer wrapped in one.
func absent(c Component) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// C builds a Tagged pair from a tag and component, for CreateWith.
func C(tag ComponentTag, c Component) Tagged {
	return Tagged{Tag: tag, Component: c}
}

// dispose releases a stored component. Called exactly once per stored
// instance: on remove, on replace, on entity destruction, or at teardown.
func dispose(c Component) {
	if d, ok := c.(Disposable); ok {
		d.Dispose()
	}
}
