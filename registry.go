package stockpile

import (
	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

var _ Registry = &registry{}

type registry struct {
	schema *schema
	cfg    Config
	logger zerolog.Logger

	allocated bool
	alive     []bool      // liveness table; alive[0] is always false
	masks     []mask.Mask // per-entity component tag masks
	stores    []store     // one per tag, indexed by ComponentTag
}

func newRegistry(s Schema, cfg Config) *registry {
	concrete := s.(*schema)
	concrete.freeze()
	cfg = cfg.withDefaults()
	return &registry{
		schema: concrete,
		cfg:    cfg,
		logger: cfg.logger,
	}
}

// Alloc reserves the liveness table and every per-tag store. Idempotent;
// Create calls it automatically.
func (r *registry) Alloc() {
	if r.allocated {
		return
	}
	tags := r.schema.TagCount()
	r.alive = make([]bool, r.cfg.MaxEntities)
	r.masks = make([]mask.Mask, r.cfg.MaxEntities)
	r.stores = make([]store, tags)
	for i := range r.stores {
		r.stores[i] = newStore(r.cfg.MaxEntities)
	}
	r.allocated = true
	r.logger.Info().
		Int("max_entities", r.cfg.MaxEntities).
		Int("component_types", tags).
		Msg("storage allocated")
}

// Dealloc destroys all live entities and releases the storage arrays,
// returning the registry to its unallocated state. Safe to call repeatedly
// or before any allocation happened.
func (r *registry) Dealloc() {
	if !r.allocated {
		return
	}
	r.DestroyAll()
	r.alive = nil
	r.masks = nil
	r.stores = nil
	r.allocated = false
	r.logger.Info().Msg("storage deallocated")
}

// Create issues the lowest free entity id, scanning ascending from 1. On
// exhaustion it returns InvalidEntity and a CapacityError.
func (r *registry) Create() (EntityID, error) {
	r.Alloc()
	for id := EntityID(1); int(id) < r.cfg.MaxEntities; id++ {
		if !r.alive[id] {
			r.alive[id] = true
			r.logger.Debug().Uint32("entity_id", uint32(id)).Msg("entity created")
			return id, nil
		}
	}
	err := CapacityError{Max: r.cfg.MaxEntities}
	r.logger.Error().Err(err).Msg("entity creation failed")
	return InvalidEntity, err
}

// CreateWith creates an entity and attaches each pair in order. Attachment
// is not transactional: pairs applied before a failed one stay attached.
func (r *registry) CreateWith(pairs ...Tagged) (EntityID, error) {
	id, err := r.Create()
	if err != nil {
		return InvalidEntity, err
	}
	for _, pair := range pairs {
		r.Add(pair.Tag, id, pair.Component)
	}
	return id, nil
}

func (r *registry) Exists(id EntityID) bool {
	if id == 0 || !r.allocated || int(id) >= len(r.alive) {
		return false
	}
	return r.alive[id]
}

// Count walks the full liveness table. Entity counts are expected to be
// queried rarely compared to component iteration.
func (r *registry) Count() int {
	total := 0
	for id := 1; id < len(r.alive); id++ {
		if r.alive[id] {
			total++
		}
	}
	return total
}

// DestroyNow removes the entity's component from every store in ascending
// tag order, then clears liveness. Immediate and synchronous.
func (r *registry) DestroyNow(id EntityID) {
	if !r.Exists(id) {
		return
	}
	m := r.masks[id]
	for tag := range r.stores {
		var bit mask.Mask
		bit.Mark(uint32(tag))
		if !m.ContainsAll(bit) {
			continue
		}
		r.Remove(ComponentTag(tag), id)
	}
	r.alive[id] = false
	r.logger.Debug().Uint32("entity_id", uint32(id)).Msg("entity destroyed")
}

func (r *registry) DestroyAll() {
	for id := 1; id < len(r.alive); id++ {
		if r.alive[id] {
			r.DestroyNow(EntityID(id))
		}
	}
}

// Add stores c for the entity, replacing (and disposing) any component the
// slot already holds. Invalid ids or tags and nil components are absorbed
// as no-ops, reported only through the diagnostic sink.
func (r *registry) Add(tag ComponentTag, id EntityID, c Component) {
	if !r.Exists(id) {
		r.logger.Debug().Err(InvalidEntityError{ID: id}).Msg("add component skipped")
		return
	}
	if int(tag) >= len(r.stores) {
		r.logger.Debug().Err(InvalidTagError{Tag: tag}).Msg("add component skipped")
		return
	}
	if absent(c) {
		return
	}
	replaced := r.stores[tag].add(id, c)
	r.masks[id].Mark(uint32(tag))
	r.logger.Debug().
		Uint32("entity_id", uint32(id)).
		Uint32("tag", uint32(tag)).
		Bool("replaced", replaced).
		Msg("component added")
}

// Remove disposes and detaches the entity's component for tag. No-op when
// the slot is already empty.
func (r *registry) Remove(tag ComponentTag, id EntityID) {
	if !r.Exists(id) {
		r.logger.Debug().Err(InvalidEntityError{ID: id}).Msg("remove component skipped")
		return
	}
	if int(tag) >= len(r.stores) {
		r.logger.Debug().Err(InvalidTagError{Tag: tag}).Msg("remove component skipped")
		return
	}
	if !r.stores[tag].remove(id) {
		return
	}
	r.masks[id].Unmark(uint32(tag))
	r.logger.Debug().
		Uint32("entity_id", uint32(id)).
		Uint32("tag", uint32(tag)).
		Msg("component removed")
}

func (r *registry) Get(tag ComponentTag, id EntityID) (Component, bool) {
	if !r.Exists(id) || int(tag) >= len(r.stores) {
		return nil, false
	}
	return r.stores[tag].get(id)
}

func (r *registry) Has(tag ComponentTag, id EntityID) bool {
	if !r.Exists(id) || int(tag) >= len(r.stores) {
		return false
	}
	var bit mask.Mask
	bit.Mark(uint32(tag))
	return r.masks[id].ContainsAll(bit)
}

func (r *registry) CountOf(tag ComponentTag) int {
	if !r.allocated || int(tag) >= len(r.stores) {
		return 0
	}
	return r.stores[tag].len()
}

func (r *registry) Schema() Schema {
	return r.schema
}
