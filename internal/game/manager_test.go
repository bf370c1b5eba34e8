package game

import (
	"math/rand"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/nova-marketing/config"
	"github.com/user/nova-marketing/internal/types"
)

func newTestManager(t *testing.T) *GameManager {
	cfg := config.DefaultConfig()
	cfg.Storage.SavePath = filepath.Join(t.TempDir(), "game_state.json")
	gm := NewGameManager(cfg)
	gm.SetRoller(NewRollerFrom(rand.NewSource(1)))
	return gm
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (rn *recordingNotifier) Notify(gameID, message string) {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	rn.messages = append(rn.messages, message)
}

func TestStartGame(t *testing.T) {
	gm := newTestManager(t)

	// Test case 1: Start a new game
	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)
	assert.NotNil(t, state)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, "Ada", state.PlayerName)
	assert.Equal(t, 50, state.Reputation)
	assert.Equal(t, 10000, state.Budget)
	assert.Equal(t, 1, state.Day)
	assert.Nil(t, state.ActiveCrisis)

	// Test case 2: Empty player name
	_, err = gm.StartGame("")
	assert.Error(t, err)
	assert.Equal(t, "player name is required", err.Error())

	// Test case 3: Get the started game
	retrieved, err := gm.GetGame(state.ID)
	assert.NoError(t, err)
	assert.Equal(t, state.ID, retrieved.ID)

	// Test case 4: Get unknown game
	_, err = gm.GetGame("nope")
	assert.Error(t, err)
	assert.Equal(t, "game not found", err.Error())
}

func TestStartGamePersists(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.SavePath = filepath.Join(t.TempDir(), "game_state.json")

	gm := NewGameManager(cfg)
	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	// A fresh manager over the same snapshot sees the game.
	gm2 := NewGameManager(cfg)
	restored, err := gm2.GetGame(state.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ada", restored.PlayerName)
	assert.Equal(t, 10000, restored.Budget)
}

func TestLaunchCampaign(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	campaign := types.Campaign{
		Name:          "First Contact",
		TargetSpecies: []string{"glorathian"},
		Platform:      "holographic",
		AdFormat:      "data",
		MessageType:   types.MessageLogical,
		Budget:        2000,
	}

	completed, _, err := gm.LaunchCampaign(state.ID, campaign)
	assert.NoError(t, err)
	assert.NotNil(t, completed)
	assert.NotEmpty(t, completed.Campaign.ID)
	assert.GreaterOrEqual(t, completed.Results.Engagement, 70.0)

	state, err = gm.GetGame(state.ID)
	assert.NoError(t, err)
	assert.Equal(t, 8000, state.Budget)
	assert.Equal(t, 2, state.Day)
	assert.Len(t, state.CompletedCampaigns, 1)
}

func TestLaunchCampaignValidation(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	base := types.Campaign{
		Name:          "Probe",
		TargetSpecies: []string{"glorathian"},
		Platform:      "holographic",
		AdFormat:      "data",
		MessageType:   types.MessageLogical,
		Budget:        2000,
	}

	// Test case 1: Unknown game
	_, _, err = gm.LaunchCampaign("nope", base)
	assert.Error(t, err)
	assert.Equal(t, "game not found", err.Error())

	// Test case 2: Missing name
	campaign := base
	campaign.Name = ""
	_, _, err = gm.LaunchCampaign(state.ID, campaign)
	assert.Error(t, err)
	assert.Equal(t, "campaign name is required", err.Error())

	// Test case 3: No target species
	campaign = base
	campaign.TargetSpecies = nil
	_, _, err = gm.LaunchCampaign(state.ID, campaign)
	assert.Error(t, err)

	// Test case 4: Invalid message type
	campaign = base
	campaign.MessageType = "subliminal"
	_, _, err = gm.LaunchCampaign(state.ID, campaign)
	assert.Error(t, err)

	// Test case 5: Budget below the minimum
	campaign = base
	campaign.Budget = 500
	_, _, err = gm.LaunchCampaign(state.ID, campaign)
	assert.Error(t, err)

	// Test case 6: Budget beyond current funds
	campaign = base
	campaign.Budget = 50000
	_, _, err = gm.LaunchCampaign(state.ID, campaign)
	assert.Error(t, err)
	assert.Equal(t, "insufficient budget for this campaign", err.Error())

	// Nothing above should have advanced the game.
	state, err = gm.GetGame(state.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Day)
	assert.Empty(t, state.CompletedCampaigns)
}

func TestLaunchCampaignUnknownPlatformIsDegenerate(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	// Unknown catalog ids are a scoring fallback, not an error.
	campaign := types.Campaign{
		Name:          "Misconfigured",
		TargetSpecies: []string{"glorathian"},
		Platform:      "carrier-pigeon",
		AdFormat:      "data",
		MessageType:   types.MessageLogical,
		Budget:        2000,
	}

	completed, _, err := gm.LaunchCampaign(state.ID, campaign)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, completed.Results.Engagement)
	assert.Equal(t, 0.0, completed.Results.ROI)
	assert.Equal(t, "Campaign configuration error: missing platform, format, or target species.", completed.Results.Feedback)

	// The budget is still spent and the day still advances.
	state, err = gm.GetGame(state.ID)
	assert.NoError(t, err)
	assert.Equal(t, 8000, state.Budget)
	assert.Equal(t, 2, state.Day)
}

func TestLaunchCampaignKeepsActiveCrisis(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	active := gm.Catalog().Crises[0]
	state.ActiveCrisis = &active

	campaign := types.Campaign{
		Name:          "Steady On",
		TargetSpecies: []string{"zenthorian"},
		Platform:      "quantum",
		AdFormat:      "video",
		MessageType:   types.MessageVisual,
		Budget:        1500,
	}

	// Whatever the crisis roll does, the outstanding crisis stays.
	for i := 0; i < 5; i++ {
		_, _, err = gm.LaunchCampaign(state.ID, campaign)
		assert.NoError(t, err)

		state, err = gm.GetGame(state.ID)
		assert.NoError(t, err)
		assert.NotNil(t, state.ActiveCrisis)
		assert.Equal(t, active.ID, state.ActiveCrisis.ID)
	}
}

func TestManagerResolveCrisis(t *testing.T) {
	gm := newTestManager(t)
	notifier := &recordingNotifier{}
	gm.SetNotifier(notifier)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	// Test case 1: No active crisis
	_, err = gm.ResolveCrisis(state.ID, "apologize")
	assert.Error(t, err)
	assert.Equal(t, "no active crisis", err.Error())

	crisis := gm.Catalog().Crises[0]
	state.ActiveCrisis = &crisis

	// Test case 2: Unknown option is a silent no-op
	outcome, err := gm.ResolveCrisis(state.ID, "bribe-everyone")
	assert.NoError(t, err)
	assert.Empty(t, outcome)
	state, _ = gm.GetGame(state.ID)
	assert.NotNil(t, state.ActiveCrisis)

	// Test case 3: Valid option applies and clears the crisis
	outcome, err = gm.ResolveCrisis(state.ID, "apologize")
	assert.NoError(t, err)
	assert.NotEmpty(t, outcome)

	state, _ = gm.GetGame(state.ID)
	assert.Nil(t, state.ActiveCrisis)
	assert.Equal(t, 55, state.Reputation)
	assert.Equal(t, 9000, state.Budget)
	assert.Contains(t, notifier.messages, "Crisis resolved: "+outcome)
}

func TestCrisisAdvice(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	// Test case 1: No active crisis
	_, err = gm.CrisisAdvice(state.ID)
	assert.Error(t, err)

	crisis := gm.Catalog().Crises[1]
	state.ActiveCrisis = &crisis

	// Test case 2: Suggestion comes from the crisis's own options
	option, err := gm.CrisisAdvice(state.ID)
	assert.NoError(t, err)
	assert.NotNil(t, option)

	found := false
	for _, o := range crisis.Options {
		if o.ID == option.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAvailableCatalogEntries(t *testing.T) {
	gm := newTestManager(t)

	state, err := gm.StartGame("Ada")
	assert.NoError(t, err)

	species, err := gm.AvailableSpecies(state.ID)
	assert.NoError(t, err)
	assert.Len(t, species, 2)
	assert.Equal(t, "glorathian", species[0].ID)
	assert.Equal(t, "zenthorian", species[1].ID)

	platforms, err := gm.AvailablePlatforms(state.ID)
	assert.NoError(t, err)
	assert.Len(t, platforms, 2)

	// Unlocks widen the listings.
	state.UnlockedSpecies = append(state.UnlockedSpecies, "aquarii")
	species, err = gm.AvailableSpecies(state.ID)
	assert.NoError(t, err)
	assert.Len(t, species, 3)
}
