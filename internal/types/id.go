package types

import "github.com/google/uuid"

// ID is an entity identifier. Stored as the canonical UUID string form.
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// Valid reports whether v parses as a UUID. Handlers gate path/payload IDs
// with this before hitting a store.
func Valid(v string) bool {
	_, err := uuid.Parse(v)
	return err == nil
}
