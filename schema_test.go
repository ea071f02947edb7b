package stockpile

import (
	"testing"
)

func TestSchemaTagAssignment(t *testing.T) {
	schema := Factory.NewSchema()

	position := RegisterComponent[Position](schema)
	velocity := RegisterComponent[Velocity](schema)
	health := RegisterComponent[Health](schema)

	// Tags are dense, assigned in registration order from 0.
	if position.Tag() != 0 || velocity.Tag() != 1 || health.Tag() != 2 {
		t.Errorf("tags = %d,%d,%d, want 0,1,2",
			position.Tag(), velocity.Tag(), health.Tag())
	}
	if got := schema.TagCount(); got != 3 {
		t.Errorf("TagCount() = %d, want 3", got)
	}

	// Re-registering a type returns its existing tag, not a new one.
	again := RegisterComponent[Velocity](schema)
	if again.Tag() != velocity.Tag() {
		t.Errorf("re-registration tag = %d, want %d", again.Tag(), velocity.Tag())
	}
	if got := schema.TagCount(); got != 3 {
		t.Errorf("TagCount() after re-registration = %d, want 3", got)
	}
}

func TestSchemaLookups(t *testing.T) {
	schema := Factory.NewSchema()
	health := RegisterComponent[Health](schema)

	tag, ok := schema.TagFor("stockpile.Health")
	if !ok || tag != health.Tag() {
		t.Errorf("TagFor(stockpile.Health) = %d, %v", tag, ok)
	}
	if _, ok := schema.TagFor("stockpile.Position"); ok {
		t.Errorf("TagFor found a type that was never registered")
	}

	name, ok := schema.NameFor(health.Tag())
	if !ok || name != "stockpile.Health" {
		t.Errorf("NameFor(%d) = %q, %v", health.Tag(), name, ok)
	}
	if _, ok := schema.NameFor(42); ok {
		t.Errorf("NameFor found an out-of-range tag")
	}
}

func TestSchemaFreeze(t *testing.T) {
	schema := Factory.NewSchema()
	RegisterComponent[Position](schema)

	if schema.Frozen() {
		t.Fatalf("schema frozen before any registry was built")
	}
	Factory.NewRegistry(schema, Config{MaxEntities: 8})
	if !schema.Frozen() {
		t.Fatalf("schema not frozen by registry construction")
	}

	// Known types are still resolvable after the freeze.
	again := RegisterComponent[Position](schema)
	if again.Tag() != 0 {
		t.Errorf("post-freeze re-registration tag = %d, want 0", again.Tag())
	}

	// New types are not.
	defer func() {
		if recover() == nil {
			t.Errorf("registering a new type after freeze did not panic")
		}
	}()
	RegisterComponent[Velocity](schema)
}
