package scoring

import (
	"testing"

	"insightmix/internal/core"
)

func TestEQScoreBounds(t *testing.T) {
	cards := []core.InsightCard{
		{},
		{Type: core.InsightCustomer, Category: "Pain Point / Fear Trigger", Confidence: 1.0, IsTimeSensitive: true,
			Title: "Fear of hidden fees", Description: "Customers are frustrated, anxious and desperate about urgent hidden fees they fear and hate"},
		{Type: core.InsightMarket, Confidence: 0.0},
		{Type: core.InsightOpportunity, Confidence: 0.5, Title: "breakthrough moment"},
	}
	for i, card := range cards {
		eq := EQScore(card)
		if eq < 0 || eq > 100 {
			t.Errorf("Card %d: EQ score %d out of [0, 100]", i, eq)
		}
	}
}

func TestEQScoreKeywordBonusCapped(t *testing.T) {
	base := core.InsightCard{Type: core.InsightMarket, Confidence: 0.5}

	few := base
	few.Description = "fear"
	many := base
	many.Description = "fear frustration excitement urgency breakthrough struggle stress pain hate love"

	fewScore := EQScore(few)
	manyScore := EQScore(many)
	if manyScore <= fewScore {
		t.Errorf("More emotional keywords should score higher: %d vs %d", manyScore, fewScore)
	}
	// Keyword bonus caps at 25 over the 50 base plus confidence floor.
	if manyScore != 50+25+5 {
		t.Errorf("Expected capped keyword score 80, got %d", manyScore)
	}
}

func TestEQScoreTypeAndCategoryBonuses(t *testing.T) {
	neutral := core.InsightCard{Type: core.InsightMarket, Confidence: 0.5}
	customer := core.InsightCard{Type: core.InsightCustomer, Confidence: 0.5}
	opportunity := core.InsightCard{Type: core.InsightOpportunity, Confidence: 0.5}

	if EQScore(customer)-EQScore(neutral) != 15 {
		t.Errorf("Customer bonus should be +15, got %d", EQScore(customer)-EQScore(neutral))
	}
	if EQScore(opportunity)-EQScore(neutral) != 10 {
		t.Errorf("Opportunity bonus should be +10, got %d", EQScore(opportunity)-EQScore(neutral))
	}

	// Category substring bonuses accumulate independently.
	multi := neutral
	multi.Category = "Pain Point Fear Trigger"
	if EQScore(multi)-EQScore(neutral) != 10+8+12 {
		t.Errorf("Expected cumulative category bonus 30, got %d", EQScore(multi)-EQScore(neutral))
	}
}

func TestEQScoreTimeSensitivityAndConfidence(t *testing.T) {
	card := core.InsightCard{Type: core.InsightMarket, Confidence: 0.9}
	if EQScore(card) != 50+9 {
		t.Errorf("Expected 59, got %d", EQScore(card))
	}

	card.IsTimeSensitive = true
	if EQScore(card) != 50+9+8 {
		t.Errorf("Expected 67, got %d", EQScore(card))
	}
}

func TestEQScoreDeterministic(t *testing.T) {
	card := core.InsightCard{
		Type:            core.InsightCustomer,
		Title:           "Customers fear losing their weekend slots",
		Description:     "urgency around booking",
		Category:        "Pain Point",
		Confidence:      0.8,
		IsTimeSensitive: true,
	}
	first := EQScore(card)
	for i := 0; i < 10; i++ {
		if EQScore(card) != first {
			t.Fatal("EQScore must be deterministic")
		}
	}
}

func TestBlendedScore(t *testing.T) {
	card := core.InsightCard{Type: core.InsightMarket, Confidence: 1.0}
	eq := EQScore(card)
	want := float64(eq)*0.6 + 100*0.4
	if got := BlendedScore(card); got != want {
		t.Errorf("BlendedScore = %f, want %f", got, want)
	}
}

func TestClassifyResonance(t *testing.T) {
	cases := []struct {
		eq   int
		want ResonanceClassification
	}{
		{95, ResonanceHigh},
		{80, ResonanceHigh},
		{79, ResonanceModerate},
		{60, ResonanceModerate},
		{59, ResonanceLow},
		{0, ResonanceLow},
	}
	for _, tc := range cases {
		if got := ClassifyResonance(tc.eq); got != tc.want {
			t.Errorf("ClassifyResonance(%d) = %q, want %q", tc.eq, got, tc.want)
		}
	}
}
