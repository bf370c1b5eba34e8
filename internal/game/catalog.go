package game

import (
	"github.com/user/nova-marketing/internal/types"
)

// Catalog holds the static reference data the simulation runs against:
// alien species, marketing platforms, ad formats and crisis templates.
// It is read-only once built.
type Catalog struct {
	Species   []types.Species
	Platforms []types.Platform
	Formats   []types.AdFormat
	Crises    []types.CrisisEvent

	speciesByID  map[string]*types.Species
	platformByID map[string]*types.Platform
	formatByID   map[string]*types.AdFormat
}

// NewCatalog builds a catalog with id indexes over the given data.
func NewCatalog(species []types.Species, platforms []types.Platform, formats []types.AdFormat, crises []types.CrisisEvent) *Catalog {
	c := &Catalog{
		Species:      species,
		Platforms:    platforms,
		Formats:      formats,
		Crises:       crises,
		speciesByID:  make(map[string]*types.Species, len(species)),
		platformByID: make(map[string]*types.Platform, len(platforms)),
		formatByID:   make(map[string]*types.AdFormat, len(formats)),
	}
	for i := range c.Species {
		c.speciesByID[c.Species[i].ID] = &c.Species[i]
	}
	for i := range c.Platforms {
		c.platformByID[c.Platforms[i].ID] = &c.Platforms[i]
	}
	for i := range c.Formats {
		c.formatByID[c.Formats[i].ID] = &c.Formats[i]
	}
	return c
}

// DefaultCatalog returns the built-in reference data.
func DefaultCatalog() *Catalog {
	return NewCatalog(alienSpecies(), marketingPlatforms(), adFormats(), crisisEvents())
}

// SpeciesByID looks up a species by id.
func (c *Catalog) SpeciesByID(id string) (*types.Species, bool) {
	s, ok := c.speciesByID[id]
	return s, ok
}

// PlatformByID looks up a platform by id.
func (c *Catalog) PlatformByID(id string) (*types.Platform, bool) {
	p, ok := c.platformByID[id]
	return p, ok
}

// FormatByID looks up an ad format by id.
func (c *Catalog) FormatByID(id string) (*types.AdFormat, bool) {
	f, ok := c.formatByID[id]
	return f, ok
}

func alienSpecies() []types.Species {
	return []types.Species{
		{
			ID:            "glorathian",
			Name:          "Glorathians",
			Description:   "Highly logical silicon-based beings that value knowledge and technological advancement.",
			Communication: "Direct, fact-based communication with precise data points.",
			Values:        []string{"Knowledge", "Efficiency", "Technology", "Order"},
			Interests:     []string{"Artificial Intelligence", "Quantum Computing", "Data Analysis", "Mathematics"},
			Dislikes:      []string{"Ambiguity", "Emotional Appeals", "Exaggerations", "Inefficiency"},
			MarketingTips: "Use detailed technical specifications and logical arguments. Include verifiable data.",
			ResponseRate:  types.ResponseRate{Emotional: 0.2, Logical: 0.9, Visual: 0.5, Audio: 0.4},
		},
		{
			ID:            "zenthorian",
			Name:          "Zenthorians",
			Description:   "Fast-metabolizing energy beings that process information rapidly and appreciate dynamic stimuli.",
			Communication: "Quick, vibrant exchanges with rich sensory components.",
			Values:        []string{"Speed", "Energy", "Novelty", "Sensation"},
			Interests:     []string{"Racing", "Light Art", "Kinetic Sculptures", "Vibration Music"},
			Dislikes:      []string{"Slow Pacing", "Static Content", "Repetition", "Lengthy Explanations"},
			MarketingTips: "Create fast-paced, visually stimulating content with quick transitions and bright colors.",
			ResponseRate:  types.ResponseRate{Emotional: 0.7, Logical: 0.4, Visual: 0.9, Audio: 0.8},
		},
		{
			ID:            "aquarii",
			Name:          "Aquarii",
			Description:   "Empathic aquatic species that communicate through emotional resonance and value community connections.",
			Communication: "Emotional resonance and community-oriented messaging.",
			Values:        []string{"Harmony", "Community", "Emotional Depth", "Sustainability"},
			Interests:     []string{"Collective Activities", "Emotional Arts", "Ocean Conservation", "Telepathic Music"},
			Dislikes:      []string{"Conflict", "Isolation", "Competitive Messaging", "Artificial Environments"},
			MarketingTips: "Focus on community benefits and emotional connections. Use flowing visuals and harmonious sounds.",
			ResponseRate:  types.ResponseRate{Emotional: 0.95, Logical: 0.4, Visual: 0.7, Audio: 0.8},
		},
		{
			ID:            "crystalline",
			Name:          "Crystalline Collective",
			Description:   "Hive-minded crystal entities that communicate through light patterns and value symmetry and resonance.",
			Communication: "Light patterns, geometric symbols, and resonant frequencies.",
			Values:        []string{"Unity", "Symmetry", "Resonance", "Growth"},
			Interests:     []string{"Crystal Harmonics", "Geometric Art", "Light Shows", "Structural Design"},
			Dislikes:      []string{"Dissonance", "Asymmetry", "Individualism", "Opacity"},
			MarketingTips: "Use geometric patterns, crystal imagery, and synchronized light displays. Focus on group benefits.",
			ResponseRate:  types.ResponseRate{Emotional: 0.5, Logical: 0.7, Visual: 0.9, Audio: 0.6},
		},
		{
			ID:            "nebulite",
			Name:          "Nebulites",
			Description:   "Gas-based intelligences that exist within nebulae and think in vast, interconnected concepts.",
			Communication: "Abstract concepts, cosmic imagery, and diffuse messaging.",
			Values:        []string{"Expansion", "Interconnection", "Transcendence", "Mystery"},
			Interests:     []string{"Cosmic Phenomena", "Cloud Formations", "Diffuse Art", "Conceptual Sciences"},
			Dislikes:      []string{"Boundaries", "Rigid Structures", "Simplification", "Direct Approaches"},
			MarketingTips: "Create dreamy, expansive visuals with cosmic themes. Use metaphors and allow for interpretation.",
			ResponseRate:  types.ResponseRate{Emotional: 0.7, Logical: 0.5, Visual: 0.8, Audio: 0.3},
		},
	}
}

func marketingPlatforms() []types.Platform {
	return []types.Platform{
		{
			ID:          "holographic",
			Name:        "Holographic Billboards",
			Description: "Giant interactive 3D displays visible from space, featuring immersive holographic content.",
			Cost:        5000,
			Reach:       0.7,
			BestFor:     []string{"Zenthorians", "Crystalline Collective"},
		},
		{
			ID:          "neural",
			Name:        "Neural Network Ads",
			Description: "Direct-to-mind advertising that creates customized experiences based on recipient's thought patterns.",
			Cost:        8000,
			Reach:       0.4,
			BestFor:     []string{"Glorathians", "Nebulites"},
		},
		{
			ID:          "quantum",
			Name:        "Quantum Social Media",
			Description: "Platforms that exist in multiple states simultaneously, allowing for personalized content delivery.",
			Cost:        3000,
			Reach:       0.8,
			BestFor:     []string{"Aquarii", "Zenthorians"},
		},
		{
			ID:          "telepathic",
			Name:        "Telepathic Broadcasts",
			Description: "Emotional and conceptual messages transmitted via psionic wavelengths across vast distances.",
			Cost:        6000,
			Reach:       0.5,
			BestFor:     []string{"Aquarii", "Nebulites"},
		},
		{
			ID:          "light",
			Name:        "Light Pattern Networks",
			Description: "Communication channels that use complex light patterns and colors to convey detailed information.",
			Cost:        4000,
			Reach:       0.6,
			BestFor:     []string{"Crystalline Collective", "Zenthorians"},
		},
	}
}

func adFormats() []types.AdFormat {
	return []types.AdFormat{
		{
			ID:            "video",
			Name:          "Cinematic Space Ads",
			Description:   "Short, visually stunning video content featuring cosmic imagery and compelling narratives.",
			Effectiveness: 0.8,
			SuitableFor:   []string{"Zenthorians", "Nebulites"},
		},
		{
			ID:            "data",
			Name:          "Data Visualization Streams",
			Description:   "Complex, interactive data displays that allow users to explore information at their own pace.",
			Effectiveness: 0.75,
			SuitableFor:   []string{"Glorathians", "Crystalline Collective"},
		},
		{
			ID:            "emotional",
			Name:          "Emotional Resonance Fields",
			Description:   "Broadcasts that transmit authentic emotional states and build genuine connections.",
			Effectiveness: 0.85,
			SuitableFor:   []string{"Aquarii", "Nebulites"},
		},
		{
			ID:            "interactive",
			Name:          "Interactive Reality Shapers",
			Description:   "Ads that allow users to modify and interact with content in real-time for personalized experiences.",
			Effectiveness: 0.9,
			SuitableFor:   []string{"Zenthorians", "Crystalline Collective"},
		},
		{
			ID:            "conceptual",
			Name:          "Abstract Concept Maps",
			Description:   "Complex, multi-layered advertisements that convey ideas rather than literal messages.",
			Effectiveness: 0.7,
			SuitableFor:   []string{"Glorathians", "Nebulites"},
		},
	}
}

func crisisEvents() []types.CrisisEvent {
	return []types.CrisisEvent{
		{
			ID:              "cultural-misunderstanding",
			Title:           "Cultural Misinterpretation Crisis",
			Description:     "Your latest ad campaign was misinterpreted by the Crystalline Collective as a sign of aggression due to the use of asymmetrical patterns.",
			AffectedSpecies: []string{"Crystalline Collective"},
			Options: []types.CrisisOption{
				{
					ID:      "apologize",
					Text:    "Issue a formal apology with symmetric patterns",
					Outcome: "The Crystalline Collective appreciates your swift response and understanding of their cultural values. Relations improve.",
					Effect:  types.CrisisEffect{Reputation: 5, Budget: -1000},
				},
				{
					ID:      "explain",
					Text:    "Launch an educational campaign about your design choices",
					Outcome: "The educational approach is partially effective, but some members remain skeptical of your intentions.",
					Effect:  types.CrisisEffect{Reputation: 0, Budget: -2000},
				},
				{
					ID:      "ignore",
					Text:    "Ignore the issue and continue with current designs",
					Outcome: "The Crystalline Collective boycotts your campaign, leading to significant setbacks in that market.",
					Effect:  types.CrisisEffect{Reputation: -10, Budget: 0},
				},
			},
		},
		{
			ID:              "rival-campaign",
			Title:           "Rival Marketing Initiative",
			Description:     "A competing marketing agency has launched a campaign targeting the same species as yours with similar messaging but higher production value.",
			AffectedSpecies: []string{"Glorathians", "Zenthorians"},
			Options: []types.CrisisOption{
				{
					ID:      "outspend",
					Text:    "Increase your budget to create even better content",
					Outcome: "Your enhanced campaign outshines the competition, but at significant cost.",
					Effect:  types.CrisisEffect{Reputation: 8, Budget: -5000},
				},
				{
					ID:      "differentiate",
					Text:    "Pivot to a unique angle that highlights your distinctive vision",
					Outcome: "Your creative approach stands out from the competition, gaining attention for originality.",
					Effect:  types.CrisisEffect{Reputation: 10, Budget: -2000},
				},
				{
					ID:      "partnership",
					Text:    "Approach the rival for a potential collaboration",
					Outcome: "After initial hesitation, they agree to collaborate, resulting in a stronger combined campaign.",
					Effect:  types.CrisisEffect{Reputation: 5, Budget: -1000},
				},
			},
		},
		{
			ID:              "technical-failure",
			Title:           "Neural Network Malfunction",
			Description:     "A glitch in your neural network ads caused users to experience random memories from other species, creating confusion.",
			AffectedSpecies: []string{"Nebulites", "Aquarii"},
			Options: []types.CrisisOption{
				{
					ID:      "compensation",
					Text:    "Offer compensation to affected users",
					Outcome: "Users appreciate the gesture, and most return to engaging with your content.",
					Effect:  types.CrisisEffect{Reputation: 3, Budget: -4000},
				},
				{
					ID:      "fix-improve",
					Text:    "Fix the issue and release an improved version with new features",
					Outcome: "The improved version generates excitement and attracts new users despite the initial problem.",
					Effect:  types.CrisisEffect{Reputation: 7, Budget: -3000},
				},
				{
					ID:      "blame-provider",
					Text:    "Publicly blame your technology provider",
					Outcome: "While some believe your explanation, the technology provider cuts ties, limiting your future capabilities.",
					Effect:  types.CrisisEffect{Reputation: -5, Budget: 0},
				},
			},
		},
	}
}
