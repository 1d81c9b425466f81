package scoring

import (
	"math"
	"regexp"
	"strings"

	"insightmix/internal/core"
)

// ResonanceClassification is the discrete display band for an EQ score.
type ResonanceClassification string

const (
	ResonanceHigh     ResonanceClassification = "high_resonance"
	ResonanceModerate ResonanceClassification = "moderate_resonance"
	ResonanceLow      ResonanceClassification = "low_resonance"
)

// ResonanceEmoji maps resonance classifications to emojis for display.
var ResonanceEmoji = map[ResonanceClassification]string{
	ResonanceHigh:     "🔥",
	ResonanceModerate: "⭐",
	ResonanceLow:      "💤",
}

// emotionalKeywords matches terms that signal emotional pull in insight
// text. Match count drives the keyword bonus of the EQ score.
var emotionalKeywords = regexp.MustCompile(`(?i)\b(fear|afraid|worry|worried|anxious|frustrat\w*|annoy\w*|angry|excite\w*|thrill\w*|love|hate|urgent|urgency|desperate|breakthrough|amazing|struggle|struggling|pain|stress\w*|overwhelm\w*|crave|craving|dream|regret)\b`)

// EQ scoring constants. The exact values keep sort ordering stable; they
// have no meaning beyond relative weight.
const (
	eqBase             = 50
	eqKeywordPoints    = 5
	eqKeywordCap       = 25
	eqCustomerBonus    = 15
	eqOpportunityBonus = 10
	eqPainBonus        = 10
	eqTriggerBonus     = 8
	eqFearBonus        = 12
	eqTimeBonus        = 8
)

// EQScore computes the 0-100 emotional-quotient heuristic for a card. It
// is a pure function of the card's fields: deterministic, additive, and
// order-independent. The score only drives sort ordering and display.
func EQScore(card core.InsightCard) int {
	score := eqBase

	matches := emotionalKeywords.FindAllString(card.Title+" "+card.Description, -1)
	keywordBonus := len(matches) * eqKeywordPoints
	if keywordBonus > eqKeywordCap {
		keywordBonus = eqKeywordCap
	}
	score += keywordBonus

	switch card.Type {
	case core.InsightCustomer:
		score += eqCustomerBonus
	case core.InsightOpportunity:
		score += eqOpportunityBonus
	}

	// Category bonuses are independent; a category matching several
	// substrings accumulates all of them.
	category := strings.ToLower(card.Category)
	if strings.Contains(category, "pain") {
		score += eqPainBonus
	}
	if strings.Contains(category, "trigger") {
		score += eqTriggerBonus
	}
	if strings.Contains(category, "fear") {
		score += eqFearBonus
	}

	if card.IsTimeSensitive {
		score += eqTimeBonus
	}

	score += int(math.Floor(card.Confidence * 10))

	return clamp(score)
}

// BlendedScore is the display ranking score: EQ weighted against raw
// confidence.
func BlendedScore(card core.InsightCard) float64 {
	return float64(EQScore(card))*0.6 + card.Confidence*100*0.4
}

// ClassifyResonance buckets an EQ score into its display band.
func ClassifyResonance(eq int) ResonanceClassification {
	switch {
	case eq >= 80:
		return ResonanceHigh
	case eq >= 60:
		return ResonanceModerate
	default:
		return ResonanceLow
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
