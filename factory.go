package stockpile

import "reflect"

type factory struct{}

var Factory factory

func (f factory) NewSchema() Schema {
	return newSchema()
}

// NewRegistry builds a registry over the given schema and freezes it.
// Storage arrays are not allocated until Alloc or the first Create.
func (f factory) NewRegistry(s Schema, cfg Config) Registry {
	return newRegistry(s, cfg)
}

// RegisterComponent assigns T the next dense tag in the schema and returns
// its typed handle. Registering the same type twice returns the same tag.
// Panics once the schema is frozen or the tag space is exhausted.
func RegisterComponent[T Component](s Schema) ComponentType[T] {
	concrete := s.(*schema)
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return ComponentType[T]{tag: concrete.register(typ)}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
