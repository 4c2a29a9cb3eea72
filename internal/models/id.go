package models

import "github.com/google/uuid"

// NewID mints the identifier used for every stored entity. Seeded fixtures
// use short stable ids instead.
func NewID() string {
	return uuid.New().String()
}
