package stockpile

import (
	"github.com/rs/zerolog"
)

func loadStoreIntoArrayLogger(r Registry, tag ComponentTag, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint32("tag", uint32(tag))
	if name, ok := r.Schema().NameFor(tag); ok {
		dictLogger = dictLogger.Str("component_name", name)
	}
	dictLogger = dictLogger.Int("occupancy", r.CountOf(tag))
	return arrayLogger.Dict(dictLogger)
}

// LogStore logs the occupancy and entity ids of a single component type.
func LogStore(logger *zerolog.Logger, r Registry, tag ComponentTag, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent.Uint32("tag", uint32(tag))
	if name, ok := r.Schema().NameFor(tag); ok {
		zeroLoggerEvent.Str("component_name", name)
	}
	zeroLoggerEvent.Int("occupancy", r.CountOf(tag))
	arrayLogger := zerolog.Arr()
	for _, id := range r.All(tag) {
		arrayLogger = arrayLogger.Uint32(uint32(id))
	}
	zeroLoggerEvent.Array("entity_ids", arrayLogger)
	zeroLoggerEvent.Send()
}

// LogAll logs a per-type occupancy summary for every registered component
// type, plus the live entity count.
func LogAll(logger *zerolog.Logger, r Registry, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent.Int("total_component_types", r.Schema().TagCount())
	arrayLogger := zerolog.Arr()
	for tag := 0; tag < r.Schema().TagCount(); tag++ {
		arrayLogger = loadStoreIntoArrayLogger(r, ComponentTag(tag), arrayLogger)
	}
	zeroLoggerEvent.Array("stores", arrayLogger)
	zeroLoggerEvent.Int("entities", r.Count())
	zeroLoggerEvent.Send()
}

// LogEntity logs one entity's liveness and the tags it currently holds.
func LogEntity(logger *zerolog.Logger, r Registry, id EntityID, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent.Uint32("entity_id", uint32(id))
	zeroLoggerEvent.Bool("alive", r.Exists(id))
	arrayLogger := zerolog.Arr()
	for tag := 0; tag < r.Schema().TagCount(); tag++ {
		if r.Has(ComponentTag(tag), id) {
			arrayLogger = loadStoreIntoArrayLogger(r, ComponentTag(tag), arrayLogger)
		}
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Send()
}
