package game

import (
	"math/rand"
	"time"
)

// Roller is the random source for campaign scoring and crisis spawning.
// All randomness in the simulation goes through a Roller so tests can
// supply deterministic sequences.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller seeded from the current time.
func NewRoller() *Roller {
	return &Roller{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewRollerFrom creates a roller backed by the given source.
func NewRollerFrom(src rand.Source) *Roller {
	return &Roller{rng: rand.New(src)}
}

// Float64 returns a uniform random number in [0,1).
func (r *Roller) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a uniform random int in [0,n).
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}

// Roll rolls a dice with the specified number of sides.
func (r *Roller) Roll(sides int) int {
	return r.rng.Intn(sides) + 1
}
