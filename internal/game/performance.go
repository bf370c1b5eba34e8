package game

import (
	"math"
	"strings"

	"github.com/user/nova-marketing/internal/types"
)

// configErrorFeedback is returned when the campaign references unknown
// catalog entries. Callers validate before launching, so hitting this is
// a fallback, not a fault.
const configErrorFeedback = "Campaign configuration error: missing platform, format, or target species."

// CalculatePerformance scores a campaign against the catalog. Three
// uniform random draws feed the engagement, reach and conversion terms,
// so repeated runs of the same campaign produce different results.
func CalculatePerformance(campaign types.Campaign, catalog *Catalog, roller *Roller) types.CampaignResults {
	targets := make([]*types.Species, 0, len(campaign.TargetSpecies))
	for _, id := range campaign.TargetSpecies {
		if s, ok := catalog.SpeciesByID(id); ok {
			targets = append(targets, s)
		}
	}

	platform, haveP := catalog.PlatformByID(campaign.Platform)
	format, haveF := catalog.FormatByID(campaign.AdFormat)

	if !haveP || !haveF || len(targets) == 0 {
		return types.CampaignResults{Feedback: configErrorFeedback}
	}

	n := float64(len(targets))

	var avgResponseRate float64
	for _, s := range targets {
		avgResponseRate += s.ResponseRate.For(campaign.MessageType)
	}
	avgResponseRate /= n

	// Suitability matches on species display names, not ids. Renaming a
	// species in the catalog silently changes scoring; kept as-is.
	var platformSuitability float64
	for _, s := range targets {
		if containsString(platform.BestFor, s.Name) {
			platformSuitability += 1.0
		} else {
			platformSuitability += 0.3
		}
	}
	platformSuitability /= n

	var formatSuitability float64
	for _, s := range targets {
		if containsString(format.SuitableFor, s.Name) {
			formatSuitability += 1.0
		} else {
			formatSuitability += 0.4
		}
	}
	formatSuitability /= n

	// Diminishing returns on spend: 0 at the 1000 floor, saturates at
	// 1 once the budget reaches 100000.
	budgetFactor := math.Min(1, math.Log10(float64(campaign.Budget)/1000)/2)

	// The additive 0.7 keeps raw engagement at or above 0.7 for every
	// valid campaign. That floor is part of the scoring contract.
	engagement := avgResponseRate*formatSuitability*roller.Float64()*0.3 + 0.7
	reach := platform.Reach * budgetFactor * (roller.Float64()*0.2 + 0.9)
	conversion := engagement * platformSuitability * (roller.Float64()*0.2 + 0.8)
	roi := (conversion * reach * 10000) / float64(campaign.Budget)

	return types.CampaignResults{
		Engagement: round1(engagement * 100),
		Reach:      round1(reach * 100),
		Conversion: round1(conversion * 100),
		ROI:        round2(roi),
		Feedback:   buildFeedback(engagement, reach, conversion, roi),
	}
}

// buildFeedback assembles the analyst narrative from threshold checks
// against the unscaled metrics, in fixed sentence order.
func buildFeedback(engagement, reach, conversion, roi float64) string {
	var b strings.Builder

	if engagement > 0.7 {
		b.WriteString("Your content resonated well with the audience. ")
	} else {
		b.WriteString("Your content didn't fully connect with the audience. ")
	}

	if reach > 0.6 {
		b.WriteString("The campaign achieved excellent visibility. ")
	} else {
		b.WriteString("The campaign had limited reach. ")
	}

	if conversion > 0.5 {
		b.WriteString("Conversion rates were strong, indicating effective persuasion. ")
	} else {
		b.WriteString("Conversion rates were below target, suggesting messaging issues. ")
	}

	switch {
	case roi > 1.5:
		b.WriteString("Outstanding return on investment!")
	case roi > 1:
		b.WriteString("Positive return on investment.")
	default:
		b.WriteString("Investment did not yield sufficient returns.")
	}

	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
