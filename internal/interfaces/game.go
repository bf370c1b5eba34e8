package interfaces

import "github.com/user/nova-marketing/internal/types"

// Notifier receives display notifications (unlocks, crisis resolutions).
// These are advisory; game state does not depend on them.
type Notifier interface {
	Notify(gameID, message string)
}

// GameManager defines the interface for game operations
type GameManager interface {
	StartGame(playerName string) (*types.GameState, error)
	GetGame(gameID string) (*types.GameState, error)
	GetAllGames() []*types.GameState
	LaunchCampaign(gameID string, campaign types.Campaign) (*types.CompletedCampaign, []string, error)
	ResolveCrisis(gameID, optionID string) (string, error)
	CrisisAdvice(gameID string) (*types.CrisisOption, error)
	AvailableSpecies(gameID string) ([]types.Species, error)
	AvailablePlatforms(gameID string) ([]types.Platform, error)
}
