package game

import (
	"math"

	"github.com/user/nova-marketing/internal/types"
)

// Starting values for a fresh game.
const (
	StartingReputation = 50
	StartingBudget     = 10000

	// MinCampaignBudget is the floor the campaign builder enforces.
	MinCampaignBudget = 1000

	// DefaultCrisisProbability is the per-campaign chance of a new
	// crisis spawning when none is active.
	DefaultCrisisProbability = 0.3
)

// unlockRule ties a reputation threshold to a catalog unlock. Rules are
// evaluated in order against the post-campaign reputation.
type unlockRule struct {
	threshold int
	species   bool // false means platform
	id        string
	message   string
}

var unlockRules = []unlockRule{
	{threshold: 60, species: true, id: "aquarii", message: "New species unlocked: Aquarii!"},
	{threshold: 70, species: false, id: "telepathic", message: "New platform unlocked: Telepathic Broadcasts!"},
	{threshold: 80, species: true, id: "crystalline", message: "New species unlocked: Crystalline Collective!"},
	{threshold: 90, species: true, id: "nebulite", message: "New species unlocked: Nebulites!"},
}

// NewGameState initializes a fresh game for the named player.
func NewGameState(playerName string) *types.GameState {
	return &types.GameState{
		PlayerName:         playerName,
		Reputation:         StartingReputation,
		Budget:             StartingBudget,
		Day:                1,
		CompletedCampaigns: []types.CompletedCampaign{},
		ActiveCrisis:       nil,
		UnlockedSpecies:    []string{"glorathian", "zenthorian"},
		UnlockedPlatforms:  []string{"holographic", "quantum"},
		GameProgress:       0,
	}
}

// ApplyCampaignOutcome folds a scored campaign into the game state:
// spends the budget, shifts reputation by the conversion result, advances
// the day, appends to history and evaluates unlocks. Returns the notable
// events (newly crossed unlocks) for display. Crisis spawning is a
// separate step, see SpawnCrisis.
func ApplyCampaignOutcome(state *types.GameState, campaign types.Campaign, results types.CampaignResults) []string {
	state.Budget -= campaign.Budget

	// Conversion of exactly 50% is reputation-neutral.
	delta := int(math.Round((results.Conversion - 50) / 10))
	state.Reputation = clamp(state.Reputation+delta, 0, 100)

	state.Day++
	state.CompletedCampaigns = append(state.CompletedCampaigns, types.CompletedCampaign{
		Campaign: campaign,
		Results:  results,
	})

	return applyUnlocks(state)
}

// applyUnlocks evaluates the unlock ladder against the current
// reputation. Idempotent: already-unlocked entries are skipped.
func applyUnlocks(state *types.GameState) []string {
	var events []string
	for _, rule := range unlockRules {
		if state.Reputation < rule.threshold {
			continue
		}
		if rule.species {
			if containsString(state.UnlockedSpecies, rule.id) {
				continue
			}
			state.UnlockedSpecies = append(state.UnlockedSpecies, rule.id)
		} else {
			if containsString(state.UnlockedPlatforms, rule.id) {
				continue
			}
			state.UnlockedPlatforms = append(state.UnlockedPlatforms, rule.id)
		}
		events = append(events, rule.message)
	}
	return events
}

// SpawnCrisis rolls for a new crisis after a campaign. An active crisis
// is never overwritten. Returns the spawned crisis, or nil.
func SpawnCrisis(state *types.GameState, catalog *Catalog, roller *Roller, probability float64) *types.CrisisEvent {
	if state.ActiveCrisis != nil {
		return nil
	}
	if roller.Float64() >= probability {
		return nil
	}
	if len(catalog.Crises) == 0 {
		return nil
	}
	crisis := catalog.Crises[roller.Intn(len(catalog.Crises))]
	state.ActiveCrisis = &crisis
	return &crisis
}

// ResolveCrisis applies the chosen option of the active crisis and
// clears it. An unknown option id is a no-op; the second return value
// reports whether anything was applied. The returned outcome text is for
// display only and is not stored in state.
func ResolveCrisis(state *types.GameState, optionID string) (string, bool) {
	if state.ActiveCrisis == nil {
		return "", false
	}

	var selected *types.CrisisOption
	for i := range state.ActiveCrisis.Options {
		if state.ActiveCrisis.Options[i].ID == optionID {
			selected = &state.ActiveCrisis.Options[i]
			break
		}
	}
	if selected == nil {
		return "", false
	}

	state.Reputation = clamp(state.Reputation+selected.Effect.Reputation, 0, 100)
	// No floor on budget: crisis penalties may push it negative.
	state.Budget += selected.Effect.Budget
	state.ActiveCrisis = nil

	return selected.Outcome, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
