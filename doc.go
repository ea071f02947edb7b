/*
Package stockpile provides the storage layer of an Entity-Component-System (ECS)
for games and simulations.

Stockpile indexes typed data blocks ("components") by integer entity
identifiers using the classic sparse-set pattern: every component type owns a
sparse slot array for O(1) point lookup plus a dense, insertion-ordered list
of entity ids for fast iteration.

Core Concepts:

  - Entity: a bare integer identifier; existence is tracked by a liveness table.
  - Component: an owned data payload attached to an entity through a typed store.
  - Tag: the dense integer identifying a component type within the engine.
  - Schema: the fixed enumeration of component types, frozen before first use.

Basic Usage:

	// Define the component space
	schema := stockpile.Factory.NewSchema()
	health := stockpile.RegisterComponent[Health](schema)

	// Create the registry (freezes the schema)
	reg := stockpile.Factory.NewRegistry(schema, stockpile.Config{})

	// Create entities and attach components
	id, _ := reg.Create()
	health.Attach(reg, id, &Health{Current: 100, Max: 100})

	// Iterate all entities holding a component type
	for _, eid := range reg.All(health.Tag()) {
		hp, _ := health.Get(reg, eid)
		hp.Current--
	}

Iteration order is insertion order. Callers that destroy entities while
iterating must walk a snapshot instead:

	for _, eid := range reg.Snapshot(health.Tag()) {
		reg.DestroyNow(eid)
	}

Stockpile is single-threaded: one tick goroutine is expected to drive all
mutation and iteration, and the engine performs no internal locking.
*/
package stockpile
