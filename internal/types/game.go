package types

// MessageType is the tone a campaign's messaging is built around.
type MessageType string

const (
	MessageEmotional MessageType = "emotional"
	MessageLogical   MessageType = "logical"
	MessageVisual    MessageType = "visual"
	MessageAudio     MessageType = "audio"
)

// Valid reports whether mt is one of the four known message types.
func (mt MessageType) Valid() bool {
	switch mt {
	case MessageEmotional, MessageLogical, MessageVisual, MessageAudio:
		return true
	}
	return false
}

// ResponseRate holds a species' receptiveness to each message type,
// each value in [0,1].
type ResponseRate struct {
	Emotional float64 `json:"emotional"`
	Logical   float64 `json:"logical"`
	Visual    float64 `json:"visual"`
	Audio     float64 `json:"audio"`
}

// For returns the rate for the given message type, 0 for unknown types.
func (rr ResponseRate) For(mt MessageType) float64 {
	switch mt {
	case MessageEmotional:
		return rr.Emotional
	case MessageLogical:
		return rr.Logical
	case MessageVisual:
		return rr.Visual
	case MessageAudio:
		return rr.Audio
	}
	return 0
}

// Species represents an alien species that campaigns can target
type Species struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Communication string       `json:"communication"`
	Values        []string     `json:"values"`
	Interests     []string     `json:"interests"`
	Dislikes      []string     `json:"dislikes"`
	MarketingTips string       `json:"marketing_tips"`
	ResponseRate  ResponseRate `json:"response_rate"`
}

// Platform represents a marketing channel
type Platform struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        int     `json:"cost"`
	Reach       float64 `json:"reach"`

	// Species display names this platform is well suited to.
	// Matching is by display name, not id.
	BestFor []string `json:"best_for"`
}

// AdFormat represents a content style for campaigns
type AdFormat struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Effectiveness float64 `json:"effectiveness"`

	// Species display names this format suits. Matching is by display name.
	SuitableFor []string `json:"suitable_for"`
}

// CrisisEffect is the state delta a crisis option applies when chosen
type CrisisEffect struct {
	Reputation int `json:"reputation"`
	Budget     int `json:"budget"`
}

// CrisisOption represents a choice in a crisis event
type CrisisOption struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Outcome string       `json:"outcome"`
	Effect  CrisisEffect `json:"effect"`
}

// CrisisEvent represents a random crisis requiring the player's response
type CrisisEvent struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	AffectedSpecies []string       `json:"affected_species"`
	Options         []CrisisOption `json:"options"`
}

// Campaign is a player-authored campaign configuration. Immutable once
// created; it persists inside the game's campaign history.
type Campaign struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetSpecies []string    `json:"target_species"`
	Platform      string      `json:"platform"`
	AdFormat      string      `json:"ad_format"`
	MessageType   MessageType `json:"message_type"`
	Budget        int         `json:"budget"`
	Description   string      `json:"description"`
}

// CampaignResults holds the scored outcome of a campaign. Engagement,
// reach and conversion are percentages rounded to 1 decimal; ROI is a
// multiplier rounded to 2 decimals. Computed once, immutable thereafter.
type CampaignResults struct {
	Engagement float64 `json:"engagement"`
	Reach      float64 `json:"reach"`
	Conversion float64 `json:"conversion"`
	ROI        float64 `json:"roi"`
	Feedback   string  `json:"feedback"`
}

// CompletedCampaign pairs a campaign with its results
type CompletedCampaign struct {
	Campaign Campaign        `json:"campaign"`
	Results  CampaignResults `json:"results"`
}

// GameState represents one player's full game
type GameState struct {
	ID         string `json:"id"`
	PlayerName string `json:"player_name"`

	// Reputation is clamped to [0,100] after every transition.
	Reputation int `json:"reputation"`

	// Budget may go negative from crisis penalties; campaigns are gated
	// to not exceed it at creation time.
	Budget int `json:"budget"`

	// Day starts at 1 and increments per completed campaign.
	Day int `json:"day"`

	// CompletedCampaigns is append-only, insertion order = chronological.
	CompletedCampaigns []CompletedCampaign `json:"completed_campaigns"`

	// At most one crisis is outstanding at any time.
	ActiveCrisis *CrisisEvent `json:"active_crisis"`

	// Unlock sets only ever grow.
	UnlockedSpecies   []string `json:"unlocked_species"`
	UnlockedPlatforms []string `json:"unlocked_platforms"`

	// Reserved; not driven by the transition rules.
	GameProgress int `json:"game_progress"`
}
