package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/nova-marketing/internal/types"
)

// GameStateStorage persists the game registry as a JSON snapshot.
// The core never touches it directly; the manager saves on every
// transition and loads on start.
type GameStateStorage struct {
	savePath  string
	stateLock sync.RWMutex
}

// NewGameStateStorage creates a new game state storage
func NewGameStateStorage(savePath string) *GameStateStorage {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// If we can't create the directory, fall back to the default path
		savePath = "./data/game_state.json"
	}

	return &GameStateStorage{
		savePath: savePath,
	}
}

// SaveGames writes the full game registry to disk.
func (gss *GameStateStorage) SaveGames(games map[string]*types.GameState) error {
	gss.stateLock.Lock()
	defer gss.stateLock.Unlock()

	// Create directory if it doesn't exist
	dir := filepath.Dir(gss.savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := os.WriteFile(gss.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}

// LoadGames reads the game registry from disk. A missing file yields an
// empty registry, not an error.
func (gss *GameStateStorage) LoadGames() (map[string]*types.GameState, error) {
	gss.stateLock.Lock()
	defer gss.stateLock.Unlock()

	if _, err := os.Stat(gss.savePath); os.IsNotExist(err) {
		return make(map[string]*types.GameState), nil
	}

	data, err := os.ReadFile(gss.savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state file: %w", err)
	}

	var games map[string]*types.GameState
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	if games == nil {
		games = make(map[string]*types.GameState)
	}

	// Ensure loaded games have initialized slices
	for _, state := range games {
		if state.CompletedCampaigns == nil {
			state.CompletedCampaigns = []types.CompletedCampaign{}
		}
		if state.UnlockedSpecies == nil {
			state.UnlockedSpecies = []string{}
		}
		if state.UnlockedPlatforms == nil {
			state.UnlockedPlatforms = []string{}
		}
	}

	return games, nil
}
