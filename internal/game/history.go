package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/user/nova-marketing/internal/types"
)

// HistoryStore keeps an append-only log of completed campaigns in a
// relational store, queried by the analytics endpoint. The in-memory
// game state remains the source of truth; this log survives it.
type HistoryStore struct {
	db *sql.DB
}

// HistoryEntry is one row of the campaign log.
type HistoryEntry struct {
	GameID       string    `json:"game_id"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Day          int       `json:"day"`
	Budget       int       `json:"budget"`
	Engagement   float64   `json:"engagement"`
	Reach        float64   `json:"reach"`
	Conversion   float64   `json:"conversion"`
	ROI          float64   `json:"roi"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewHistoryStore opens the database and ensures the schema exists.
func NewHistoryStore(driver, dsn string) (*HistoryStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS campaign_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		campaign_id TEXT NOT NULL,
		campaign_name TEXT NOT NULL,
		day INTEGER NOT NULL,
		budget INTEGER NOT NULL,
		engagement REAL NOT NULL,
		reach REAL NOT NULL,
		conversion REAL NOT NULL,
		roi REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_campaign_history_game ON campaign_history(game_id);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Record appends one completed campaign to the log.
func (hs *HistoryStore) Record(gameID string, day int, campaign types.Campaign, results types.CampaignResults) error {
	_, err := hs.db.Exec(
		`INSERT INTO campaign_history
			(game_id, campaign_id, campaign_name, day, budget, engagement, reach, conversion, roi, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID, campaign.ID, campaign.Name, day, campaign.Budget,
		results.Engagement, results.Reach, results.Conversion, results.ROI,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record campaign history: %w", err)
	}
	return nil
}

// ForGame returns the logged campaigns for a game in chronological order.
func (hs *HistoryStore) ForGame(gameID string) ([]HistoryEntry, error) {
	rows, err := hs.db.Query(
		`SELECT game_id, campaign_id, campaign_name, day, budget, engagement, reach, conversion, roi, created_at
			FROM campaign_history WHERE game_id = ? ORDER BY id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaign history: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.GameID, &e.CampaignID, &e.CampaignName, &e.Day, &e.Budget,
			&e.Engagement, &e.Reach, &e.Conversion, &e.ROI, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read campaign history: %w", err)
	}

	return entries, nil
}

// Close releases the underlying database handle.
func (hs *HistoryStore) Close() error {
	return hs.db.Close()
}
