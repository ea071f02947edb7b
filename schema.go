package stockpile

import "reflect"

// MaxComponentTypes caps the dense tag space. The limit tracks the per-entity
// component bitmask width.
const MaxComponentTypes = 64

var _ Schema = &schema{}

type registration struct {
	name string
	typ  reflect.Type
}

// schema assigns dense tags to component types in registration order. It is
// mutable until the first registry built over it freezes it; afterwards
// registration of an unknown type panics.
type schema struct {
	kinds  Cache[registration]
	frozen bool
}

func newSchema() *schema {
	return &schema{
		kinds: FactoryNewCache[registration](MaxComponentTypes),
	}
}

func (s *schema) register(typ reflect.Type) ComponentTag {
	name := typ.String()
	if idx, ok := s.kinds.GetIndex(name); ok {
		return ComponentTag(idx)
	}
	if s.frozen {
		panic(SchemaFrozenError{Name: name})
	}
	idx, err := s.kinds.Register(name, registration{name: name, typ: typ})
	if err != nil {
		panic(TagLimitError{Max: MaxComponentTypes})
	}
	return ComponentTag(idx)
}

func (s *schema) freeze() {
	s.frozen = true
}

func (s *schema) TagCount() int {
	return s.kinds.Len()
}

func (s *schema) TagFor(name string) (ComponentTag, bool) {
	idx, ok := s.kinds.GetIndex(name)
	if !ok {
		return 0, false
	}
	return ComponentTag(idx), true
}

func (s *schema) NameFor(tag ComponentTag) (string, bool) {
	if int(tag) >= s.kinds.Len() {
		return "", false
	}
	return s.kinds.GetItem32(uint32(tag)).name, true
}

func (s *schema) Frozen() bool {
	return s.frozen
}
