package compat

import (
	"math"

	"insightmix/internal/core"
)

// SynergyClassification is the display label for a compatibility score.
type SynergyClassification string

const (
	SynergyHigh     SynergyClassification = "High Synergy"
	SynergyGood     SynergyClassification = "Good Fit"
	SynergyConflict SynergyClassification = "Potential Conflict"
)

// typePair is an unordered insight-type pair, stored in a canonical order
// so lookups are symmetric.
type typePair struct {
	a, b core.InsightType
}

func pairOf(a, b core.InsightType) typePair {
	if a > b {
		a, b = b, a
	}
	return typePair{a, b}
}

// pairBonuses scores how well two insight types reinforce each other in a
// single piece of content. Customer needs paired with an opportunity is
// the strongest combination; competitor talk aimed at customer needs reads
// as defensive and is penalized.
var pairBonuses = map[typePair]int{
	pairOf(core.InsightCustomer, core.InsightOpportunity):    40,
	pairOf(core.InsightLocal, core.InsightCustomer):          35,
	pairOf(core.InsightCompetition, core.InsightOpportunity): 38,
	pairOf(core.InsightMarket, core.InsightCustomer):         30,
	pairOf(core.InsightLocal, core.InsightOpportunity):       25,
	pairOf(core.InsightMarket, core.InsightOpportunity):      20,
	pairOf(core.InsightCompetition, core.InsightCustomer):    -10,
}

const (
	compatBase       = 50
	sameTypeBonus    = 10
	bothTimeBonus    = 10
	oneTimeBonus     = 5
	highSynergyFloor = 90
	goodFitFloor     = 70
)

// Score computes the 0-100 pairwise synergy between two selected cards.
// It is symmetric: Score(a, b) == Score(b, a). The score is advisory and
// never blocks selection.
func Score(a, b core.InsightCard) int {
	score := compatBase

	if a.Type == b.Type {
		score += sameTypeBonus
	}
	score += pairBonuses[pairOf(a.Type, b.Type)]

	if a.IsTimeSensitive && b.IsTimeSensitive {
		score += bothTimeBonus
	} else if a.IsTimeSensitive || b.IsTimeSensitive {
		score += oneTimeBonus
	}

	score += int(math.Round((a.Confidence + b.Confidence) / 2 * 10))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Classify buckets a compatibility score into its display label.
func Classify(score int) SynergyClassification {
	switch {
	case score >= highSynergyFloor:
		return SynergyHigh
	case score >= goodFitFloor:
		return SynergyGood
	default:
		return SynergyConflict
	}
}
