package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/yahtzee/internal/common/uuid Generator

// Generator hands out identifiers for games
type Generator interface {
	NewGameID() string
}

// Random implements Generator with random (version 4) UUIDs
type Random struct{}

// New returns a random UUID generator
func New() *Random {
	return &Random{}
}

// NewGameID returns a new UUID string
func (r *Random) NewGameID() string {
	return uuid.NewString()
}
