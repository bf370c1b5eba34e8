package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
	qrcode "github.com/skip2/go-qrcode"
	"github.com/user/nova-marketing/config"
	"github.com/user/nova-marketing/internal/game"
	"github.com/user/nova-marketing/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize game manager
	gameManager := game.NewGameManager(cfg)
	gameManager.SetLogger(logger)
	gameManager.SetNotifier(&logNotifier{logger: logger})

	// Load catalog overrides when a data directory is configured
	if cfg.Game.DataDir != "" {
		if err := loadCatalog(gameManager, cfg.Game.DataDir, logger); err != nil {
			logger.Fatal("Failed to load catalog data", zap.Error(err))
		}
	}

	// Open campaign history store
	history, err := game.NewHistoryStore(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open history store", zap.Error(err))
	}
	defer history.Close()
	gameManager.SetHistoryStore(history)

	// Set up HTTP server
	server := setupHTTPServer(cfg, gameManager, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(logger)
}

func setupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

// logNotifier forwards display notifications to the log. A UI
// collaborator would turn these into toasts.
type logNotifier struct {
	logger *zap.Logger
}

func (n *logNotifier) Notify(gameID, message string) {
	n.logger.Info("Game notification",
		zap.String("game_id", gameID),
		zap.String("message", message))
}

func loadCatalog(gameManager *game.GameManager, dataDir string, logger *zap.Logger) error {
	dataLoader := game.NewDataLoader(dataDir)

	catalog, err := dataLoader.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	gameManager.SetCatalog(catalog)
	logger.Info("Loaded catalog overrides",
		zap.String("data_dir", dataDir),
		zap.Int("species", len(catalog.Species)),
		zap.Int("platforms", len(catalog.Platforms)),
		zap.Int("formats", len(catalog.Formats)),
		zap.Int("crises", len(catalog.Crises)))

	return nil
}

func setupHTTPServer(cfg config.Config, gameManager *game.GameManager, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Full catalog listings
	router.Get("/catalog/species", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameManager.Catalog().Species)
	})
	router.Get("/catalog/platforms", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameManager.Catalog().Platforms)
	})
	router.Get("/catalog/formats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameManager.Catalog().Formats)
	})

	// Start a new game
	router.Post("/games", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerName string `json:"player_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		state, err := gameManager.StartGame(req.PlayerName)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, state)
	})

	// Fetch game state
	router.Get("/games/{game_id}", func(w http.ResponseWriter, r *http.Request) {
		state, err := gameManager.GetGame(chi.URLParam(r, "game_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, state)
	})

	// Unlocked catalog entries for a game
	router.Get("/games/{game_id}/species", func(w http.ResponseWriter, r *http.Request) {
		species, err := gameManager.AvailableSpecies(chi.URLParam(r, "game_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, species)
	})
	router.Get("/games/{game_id}/platforms", func(w http.ResponseWriter, r *http.Request) {
		platforms, err := gameManager.AvailablePlatforms(chi.URLParam(r, "game_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, platforms)
	})

	// Launch a campaign
	router.Post("/games/{game_id}/campaigns", func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")

		var campaign types.Campaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		completed, events, err := gameManager.LaunchCampaign(gameID, campaign)
		if err != nil {
			logger.Error("Failed to launch campaign",
				zap.String("game_id", gameID),
				zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		state, err := gameManager.GetGame(gameID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"campaign": completed.Campaign,
			"results":  completed.Results,
			"events":   events,
			"state":    state,
		})
	})

	// Campaign history log
	router.Get("/games/{game_id}/history", func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		entries, err := gameManager.CampaignHistory(gameID)
		if err != nil {
			logger.Error("Failed to load campaign history",
				zap.String("game_id", gameID),
				zap.Error(err))
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	})

	// Resolve the active crisis
	router.Post("/games/{game_id}/crisis", func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")

		var req struct {
			OptionID string `json:"option_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		outcome, err := gameManager.ResolveCrisis(gameID, req.OptionID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		state, err := gameManager.GetGame(gameID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"outcome": outcome,
			"state":   state,
		})
	})

	// Advice for the active crisis
	router.Get("/games/{game_id}/crisis/advice", func(w http.ResponseWriter, r *http.Request) {
		option, err := gameManager.CrisisAdvice(chi.URLParam(r, "game_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, option)
	})

	// Share a game as a QR code pointing at its state endpoint
	router.Get("/games/{game_id}/share", func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		if _, err := gameManager.GetGame(gameID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		shareURL := fmt.Sprintf("%s/games/%s", cfg.Server.BaseURL, gameID)
		png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
		if err != nil {
			logger.Error("Failed to generate share QR code",
				zap.String("game_id", gameID),
				zap.Error(err))
			http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down")
}
