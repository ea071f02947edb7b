package stockpile

import (
	"iter"
)

// EntityID is an entity identifier. Zero is reserved as "invalid/none" and
// is never issued.
type EntityID uint32

// ComponentTag is the dense integer identifying a component type within the
// engine. Tags are assigned by a Schema in registration order, starting at 0.
type ComponentTag uint32

// InvalidEntity is the sentinel id returned when entity creation fails.
const InvalidEntity EntityID = 0

// Registry owns the set of live entity identifiers and every per-tag
// component store. One registry is expected per simulation; independent
// registries are fully isolated.
type Registry interface {
	Alloc()
	Dealloc()
	Create() (EntityID, error)
	CreateWith(pairs ...Tagged) (EntityID, error)
	Exists(EntityID) bool
	Count() int
	DestroyNow(EntityID)
	DestroyAll()

	Add(ComponentTag, EntityID, Component)
	Remove(ComponentTag, EntityID)
	Get(ComponentTag, EntityID) (Component, bool)
	Has(ComponentTag, EntityID) bool
	All(ComponentTag) []EntityID
	Snapshot(ComponentTag) []EntityID
	Entities(ComponentTag) iter.Seq[EntityID]
	CountOf(ComponentTag) int

	Schema() Schema
}

// Schema is the fixed enumeration of component types. Registration happens
// through RegisterComponent before the registry is constructed; the registry
// freezes the schema on construction.
type Schema interface {
	TagCount() int
	TagFor(name string) (ComponentTag, bool)
	NameFor(ComponentTag) (string, bool)
	Frozen() bool
}

// Component is the capability contract every stored payload must satisfy.
// IsEmpty distinguishes a real stored value from a zero "safe empty" value
// returned on a missed typed lookup; the engine never consults it for
// storage bookkeeping.
type Component interface {
	IsEmpty() bool
}

// Disposable components receive exactly one Dispose call when the engine
// releases them: on explicit remove, on replace, on entity destruction, or
// at teardown.
type Disposable interface {
	Dispose()
}

// Tagged pairs a component with the tag of the store it belongs to, for
// ordered attachment via CreateWith.
type Tagged struct {
	Tag       ComponentTag
	Component Component
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
	Len() int
}

// ComponentType is the typed handle for one registered component type. It
// carries the type's tag and gives type-safe access to the underlying store.
type ComponentType[T Component] struct {
	tag ComponentTag
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
