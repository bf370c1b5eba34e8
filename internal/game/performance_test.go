package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/nova-marketing/internal/types"
)

func validCampaign(budget int) types.Campaign {
	return types.Campaign{
		ID:            "1700000000000",
		Name:          "First Contact",
		TargetSpecies: []string{"glorathian", "zenthorian"},
		Platform:      "holographic",
		AdFormat:      "video",
		MessageType:   types.MessageLogical,
		Budget:        budget,
	}
}

func TestCalculatePerformanceEngagementFloor(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(1))

	// The additive 0.7 baseline keeps engagement at 70% or above for
	// every valid campaign, regardless of targeting quality.
	worst := types.Campaign{
		Name:          "Mismatched",
		TargetSpecies: []string{"glorathian"},
		Platform:      "quantum",
		AdFormat:      "video",
		MessageType:   types.MessageEmotional,
		Budget:        1000,
	}

	for i := 0; i < 200; i++ {
		results := CalculatePerformance(worst, catalog, roller)
		assert.GreaterOrEqual(t, results.Engagement, 70.0)
	}
}

func TestCalculatePerformanceROIConsistency(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(42))

	// ROI must be reconstructible from the other two outputs, up to the
	// 1-decimal rounding already applied to them.
	for i := 0; i < 100; i++ {
		campaign := validCampaign(2000 + i*500)
		results := CalculatePerformance(campaign, catalog, roller)

		reconstructed := (results.Conversion / 100) * (results.Reach / 100) * 10000 / float64(campaign.Budget)
		assert.InDelta(t, reconstructed, results.ROI, 0.02)
	}
}

func TestCalculatePerformanceDegenerateConfig(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(1))

	expected := types.CampaignResults{
		Engagement: 0,
		Reach:      0,
		Conversion: 0,
		ROI:        0,
		Feedback:   "Campaign configuration error: missing platform, format, or target species.",
	}

	// Unknown platform
	campaign := validCampaign(2000)
	campaign.Platform = "carrier-pigeon"
	assert.Equal(t, expected, CalculatePerformance(campaign, catalog, roller))

	// Unknown ad format
	campaign = validCampaign(2000)
	campaign.AdFormat = "skywriting"
	assert.Equal(t, expected, CalculatePerformance(campaign, catalog, roller))

	// Target set resolves to zero species
	campaign = validCampaign(2000)
	campaign.TargetSpecies = []string{"martian"}
	assert.Equal(t, expected, CalculatePerformance(campaign, catalog, roller))
}

func TestCalculatePerformanceBudgetFloor(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(7))

	// log10(1000/1000) = 0, so a minimum-budget campaign has no reach
	// and no return.
	results := CalculatePerformance(validCampaign(1000), catalog, roller)
	assert.Equal(t, 0.0, results.Reach)
	assert.Equal(t, 0.0, results.ROI)
	assert.Contains(t, results.Feedback, "The campaign had limited reach.")
	assert.Contains(t, results.Feedback, "Investment did not yield sufficient returns.")
}

func TestCalculatePerformanceBudgetSaturation(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(7))

	// Budget factor saturates at 1 from 100000 up; reach is then capped
	// by the platform's reach ceiling times the 1.1 random ceiling.
	campaign := validCampaign(250000)
	platform, ok := catalog.PlatformByID(campaign.Platform)
	assert.True(t, ok)

	for i := 0; i < 100; i++ {
		results := CalculatePerformance(campaign, catalog, roller)
		assert.LessOrEqual(t, results.Reach, platform.Reach*1.1*100)
		assert.GreaterOrEqual(t, results.Reach, platform.Reach*0.9*100)
	}
}

func TestCalculatePerformanceFeedbackShape(t *testing.T) {
	catalog := DefaultCatalog()
	roller := NewRollerFrom(rand.NewSource(3))

	results := CalculatePerformance(validCampaign(5000), catalog, roller)

	// Four sentences in fixed order; engagement's floor means the first
	// is always the positive variant.
	assert.True(t, strings.HasPrefix(results.Feedback, "Your content resonated well with the audience. "))
	assert.Contains(t, results.Feedback, "Conversion rates")

	last := []string{
		"Outstanding return on investment!",
		"Positive return on investment.",
		"Investment did not yield sufficient returns.",
	}
	matched := false
	for _, sentence := range last {
		if strings.HasSuffix(results.Feedback, sentence) {
			matched = true
		}
	}
	assert.True(t, matched, "feedback should end with an ROI sentence: %q", results.Feedback)
}

func TestCalculatePerformanceSuitabilityMatchesOnDisplayName(t *testing.T) {
	roller := NewRollerFrom(rand.NewSource(9))

	// Suitability compares species display names against the platform's
	// best-for list. Renaming a species breaks the match even when ids
	// are untouched.
	renamed := alienSpecies()
	for i := range renamed {
		if renamed[i].ID == "zenthorian" {
			renamed[i].Name = "Zenthorians (Reformed)"
		}
	}
	catalog := NewCatalog(renamed, marketingPlatforms(), adFormats(), crisisEvents())

	campaign := types.Campaign{
		Name:          "Rename Probe",
		TargetSpecies: []string{"zenthorian"},
		Platform:      "holographic",
		AdFormat:      "interactive",
		MessageType:   types.MessageVisual,
		Budget:        100000,
	}

	// With the 0.3 mismatch weight, conversion tops out well below the
	// matched case: engagement <= 1.0, suitability 0.3, random <= 1.0.
	for i := 0; i < 100; i++ {
		results := CalculatePerformance(campaign, catalog, roller)
		assert.LessOrEqual(t, results.Conversion, 30.0)
	}
}
