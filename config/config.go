package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Database configuration
	Database DatabaseConfig `json:"database"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Starting budget for a new game
	StartingBudget int `json:"starting_budget"`

	// Starting reputation for a new game
	StartingReputation int `json:"starting_reputation"`

	// Minimum budget a campaign may be created with
	MinCampaignBudget int `json:"min_campaign_budget"`

	// Probability of a crisis spawning after a campaign (0-1)
	CrisisProbability float64 `json:"crisis_probability"`

	// Optional directory with catalog override files
	DataDir string `json:"data_dir"`
}

// DatabaseConfig holds database specific configuration
type DatabaseConfig struct {
	// Database driver (sqlite3)
	Driver string `json:"driver"`

	// Database connection string
	DSN string `json:"dsn"`
}

// StorageConfig holds game state persistence configuration
type StorageConfig struct {
	// Path to the game state snapshot file
	SavePath string `json:"save_path"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`

	// Base URL used when building share links
	BaseURL string `json:"base_url"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			StartingBudget:     10000,
			StartingReputation: 50,
			MinCampaignBudget:  1000,
			CrisisProbability:  0.3,
			DataDir:            "",
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "./nova-marketing.db",
		},
		Storage: StorageConfig{
			SavePath: "./data/game_state.json",
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
			BaseURL:  "http://localhost:8080",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		file, err := os.Create(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(config); err != nil {
			return config, err
		}

		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
