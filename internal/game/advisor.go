package game

import (
	"github.com/user/nova-marketing/internal/types"
)

// Advisor scores the options of a crisis and suggests one. It weighs
// reputation gain against budget cost with a small random jitter so the
// suggestion is not fully predictable.
type Advisor struct {
	roller *Roller
}

// NewAdvisor creates a new advisor
func NewAdvisor(roller *Roller) *Advisor {
	return &Advisor{roller: roller}
}

// Suggest returns the recommended option for the given crisis, or nil
// when the crisis has no options.
func (a *Advisor) Suggest(crisis *types.CrisisEvent) *types.CrisisOption {
	if crisis == nil || len(crisis.Options) == 0 {
		return nil
	}

	bestScore := -1 << 30
	var best *types.CrisisOption
	for i := range crisis.Options {
		option := &crisis.Options[i]

		// Reputation dominates; each 1000 of budget weighs one point.
		score := option.Effect.Reputation*2 + option.Effect.Budget/1000
		score += a.roller.Roll(5)

		if score > bestScore {
			bestScore = score
			best = option
		}
	}

	return best
}
