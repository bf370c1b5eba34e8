package game

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/user/nova-marketing/config"
	"github.com/user/nova-marketing/internal/interfaces"
	"github.com/user/nova-marketing/internal/types"
	"go.uber.org/zap"
)

// GameManager owns the game registry and runs every state transition:
// starting games, launching campaigns, spawning and resolving crises.
// State is persisted after each transition.
type GameManager struct {
	games     map[string]*types.GameState
	stateLock sync.RWMutex
	storage   *GameStateStorage
	catalog   *Catalog
	config    config.Config
	Logger    *zap.Logger
	roller    *Roller
	advisor   *Advisor
	history   *HistoryStore
	notifier  interfaces.Notifier
}

// Ensure GameManager satisfies the interfaces.GameManager interface
var _ interfaces.GameManager = (*GameManager)(nil)

// NewGameManager creates a new game manager
func NewGameManager(cfg config.Config) *GameManager {
	storage := NewGameStateStorage(cfg.Storage.SavePath)

	// Try to load existing games
	games, err := storage.LoadGames()
	if err != nil {
		games = make(map[string]*types.GameState)
	}

	roller := NewRoller()
	return &GameManager{
		games:   games,
		storage: storage,
		catalog: DefaultCatalog(),
		config:  cfg,
		Logger:  zap.NewNop(), // Will be set by the server
		roller:  roller,
		advisor: NewAdvisor(roller),
	}
}

// SetLogger sets the manager's logger.
func (gm *GameManager) SetLogger(logger *zap.Logger) {
	gm.Logger = logger
}

// SetCatalog replaces the built-in catalog, e.g. with loader overrides.
func (gm *GameManager) SetCatalog(catalog *Catalog) {
	gm.catalog = catalog
}

// SetNotifier sets the collaborator that receives display notifications.
func (gm *GameManager) SetNotifier(notifier interfaces.Notifier) {
	gm.notifier = notifier
}

// SetHistoryStore sets the campaign history log.
func (gm *GameManager) SetHistoryStore(history *HistoryStore) {
	gm.history = history
}

// SetRoller replaces the random source. Used by tests to supply
// deterministic sequences.
func (gm *GameManager) SetRoller(roller *Roller) {
	gm.roller = roller
	gm.advisor = NewAdvisor(roller)
}

// Catalog returns the reference catalog.
func (gm *GameManager) Catalog() *Catalog {
	return gm.catalog
}

// saveState persists the current game registry
func (gm *GameManager) saveState() error {
	return gm.storage.SaveGames(gm.games)
}

func (gm *GameManager) notify(gameID, message string) {
	if gm.notifier != nil {
		gm.notifier.Notify(gameID, message)
	}
}

// StartGame creates a new game for the named player
func (gm *GameManager) StartGame(playerName string) (*types.GameState, error) {
	if playerName == "" {
		return nil, errors.New("player name is required")
	}

	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	state := NewGameState(playerName)
	state.ID = uuid.New().String()
	state.Reputation = gm.config.Game.StartingReputation
	state.Budget = gm.config.Game.StartingBudget

	gm.games[state.ID] = state

	if err := gm.saveState(); err != nil {
		return nil, fmt.Errorf("failed to save game state: %w", err)
	}

	gm.Logger.Info("Started new game",
		zap.String("game_id", state.ID),
		zap.String("player", playerName))

	return state, nil
}

// GetGame retrieves a game by id
func (gm *GameManager) GetGame(gameID string) (*types.GameState, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	state, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	return state, nil
}

// GetAllGames returns all games
func (gm *GameManager) GetAllGames() []*types.GameState {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	games := make([]*types.GameState, 0, len(gm.games))
	for _, state := range gm.games {
		games = append(games, state)
	}
	return games
}

// LaunchCampaign scores a campaign, folds the outcome into the game
// state and rolls for a crisis. Returns the completed campaign and the
// notable events (unlocks) for display.
func (gm *GameManager) LaunchCampaign(gameID string, campaign types.Campaign) (*types.CompletedCampaign, []string, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	state, exists := gm.games[gameID]
	if !exists {
		return nil, nil, errors.New("game not found")
	}

	if campaign.Name == "" {
		return nil, nil, errors.New("campaign name is required")
	}
	if len(campaign.TargetSpecies) == 0 {
		return nil, nil, errors.New("campaign needs at least one target species")
	}
	if !campaign.MessageType.Valid() {
		return nil, nil, errors.New("invalid message type")
	}
	if campaign.Budget < gm.config.Game.MinCampaignBudget {
		return nil, nil, fmt.Errorf("campaign budget below minimum of %d", gm.config.Game.MinCampaignBudget)
	}
	if campaign.Budget > state.Budget {
		return nil, nil, errors.New("insufficient budget for this campaign")
	}

	// Campaign ids are generation-time timestamps, like the builder
	// assigns them.
	if campaign.ID == "" {
		campaign.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	results := CalculatePerformance(campaign, gm.catalog, gm.roller)

	events := ApplyCampaignOutcome(state, campaign, results)
	for _, event := range events {
		gm.notify(gameID, event)
	}

	if crisis := SpawnCrisis(state, gm.catalog, gm.roller, gm.config.Game.CrisisProbability); crisis != nil {
		gm.Logger.Info("Crisis spawned",
			zap.String("game_id", gameID),
			zap.String("crisis_id", crisis.ID))
	}

	if gm.history != nil {
		if err := gm.history.Record(gameID, state.Day, campaign, results); err != nil {
			gm.Logger.Error("Failed to record campaign history",
				zap.String("game_id", gameID),
				zap.Error(err))
		}
	}

	if err := gm.saveState(); err != nil {
		return nil, nil, fmt.Errorf("failed to save game state: %w", err)
	}

	gm.Logger.Info("Campaign completed",
		zap.String("game_id", gameID),
		zap.String("campaign", campaign.Name),
		zap.Int("budget", campaign.Budget),
		zap.Float64("conversion", results.Conversion),
		zap.Float64("roi", results.ROI),
		zap.Int("reputation", state.Reputation))

	return &types.CompletedCampaign{Campaign: campaign, Results: results}, events, nil
}

// ResolveCrisis applies the chosen option of a game's active crisis.
// An unknown option id leaves the state untouched and returns an empty
// outcome; callers are expected to pass ids from the crisis's own
// option list.
func (gm *GameManager) ResolveCrisis(gameID, optionID string) (string, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	state, exists := gm.games[gameID]
	if !exists {
		return "", errors.New("game not found")
	}

	if state.ActiveCrisis == nil {
		return "", errors.New("no active crisis")
	}

	outcome, applied := ResolveCrisis(state, optionID)
	if !applied {
		gm.Logger.Warn("Crisis option not found",
			zap.String("game_id", gameID),
			zap.String("option_id", optionID))
		return "", nil
	}

	if err := gm.saveState(); err != nil {
		return "", fmt.Errorf("failed to save game state: %w", err)
	}

	gm.notify(gameID, "Crisis resolved: "+outcome)

	return outcome, nil
}

// CrisisAdvice suggests an option for the game's active crisis
func (gm *GameManager) CrisisAdvice(gameID string) (*types.CrisisOption, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	state, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	if state.ActiveCrisis == nil {
		return nil, errors.New("no active crisis")
	}

	return gm.advisor.Suggest(state.ActiveCrisis), nil
}

// AvailableSpecies returns the catalog species a game has unlocked
func (gm *GameManager) AvailableSpecies(gameID string) ([]types.Species, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	state, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	species := make([]types.Species, 0, len(state.UnlockedSpecies))
	for _, s := range gm.catalog.Species {
		if containsString(state.UnlockedSpecies, s.ID) {
			species = append(species, s)
		}
	}
	return species, nil
}

// AvailablePlatforms returns the catalog platforms a game has unlocked
func (gm *GameManager) AvailablePlatforms(gameID string) ([]types.Platform, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	state, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}

	platforms := make([]types.Platform, 0, len(state.UnlockedPlatforms))
	for _, p := range gm.catalog.Platforms {
		if containsString(state.UnlockedPlatforms, p.ID) {
			platforms = append(platforms, p)
		}
	}
	return platforms, nil
}

// CampaignHistory returns the logged campaigns for a game
func (gm *GameManager) CampaignHistory(gameID string) ([]HistoryEntry, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	if _, exists := gm.games[gameID]; !exists {
		return nil, errors.New("game not found")
	}

	if gm.history == nil {
		return []HistoryEntry{}, nil
	}

	return gm.history.ForGame(gameID)
}
