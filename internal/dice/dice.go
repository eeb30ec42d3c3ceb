package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/yahtzee/internal/dice Roller

// Roller produces single die results
type Roller interface {
	// Roll returns a value in 1..sides
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games and tests
	Seed int64
}

// roller implements Roller with a math/rand source
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}
