package stockpile

import "fmt"

type CapacityError struct {
	Max int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("entity capacity reached (%d)", e.Max)
}

type InvalidEntityError struct {
	ID EntityID
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid or dead entity id: %d", e.ID)
}

type InvalidTagError struct {
	Tag ComponentTag
}

func (e InvalidTagError) Error() string {
	return fmt.Sprintf("component tag out of range: %d", e.Tag)
}

type SchemaFrozenError struct {
	Name string
}

func (e SchemaFrozenError) Error() string {
	return fmt.Sprintf("schema is frozen, cannot register component type: %s", e.Name)
}

type TagLimitError struct {
	Max int
}

func (e TagLimitError) Error() string {
	return fmt.Sprintf("component type limit exceeded (max %d)", e.Max)
}

type CacheCapacityError struct {
	Cap int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Cap)
}
