package compat

import (
	"testing"

	"insightmix/internal/core"
)

func TestScoreSymmetry(t *testing.T) {
	for _, typeA := range core.AllInsightTypes {
		for _, typeB := range core.AllInsightTypes {
			a := core.InsightCard{ID: "a", Type: typeA, Confidence: 0.9, IsTimeSensitive: true}
			b := core.InsightCard{ID: "b", Type: typeB, Confidence: 0.4}
			if Score(a, b) != Score(b, a) {
				t.Errorf("Score not symmetric for pair (%s, %s): %d vs %d",
					typeA, typeB, Score(a, b), Score(b, a))
			}
		}
	}
}

func TestScoreBounds(t *testing.T) {
	confidences := []float64{0, 0.5, 1}
	for _, typeA := range core.AllInsightTypes {
		for _, typeB := range core.AllInsightTypes {
			for _, confA := range confidences {
				for _, confB := range confidences {
					a := core.InsightCard{Type: typeA, Confidence: confA}
					b := core.InsightCard{Type: typeB, Confidence: confB, IsTimeSensitive: true}
					score := Score(a, b)
					if score < 0 || score > 100 {
						t.Errorf("Score(%s/%f, %s/%f) = %d out of [0, 100]",
							typeA, confA, typeB, confB, score)
					}
				}
			}
		}
	}
}

func TestScoreCustomerOpportunityClampsHigh(t *testing.T) {
	customer := core.InsightCard{
		Type:            core.InsightCustomer,
		Confidence:      0.9,
		IsTimeSensitive: true,
		Category:        "Pain Point",
	}
	opportunity := core.InsightCard{
		Type:       core.InsightOpportunity,
		Confidence: 0.8,
	}

	// 50 base + 40 pair bonus + 5 single time-sensitive + 9 confidence
	// overshoots the scale and clamps.
	score := Score(customer, opportunity)
	if score != 100 {
		t.Errorf("Expected clamped score 100, got %d", score)
	}
	if Classify(score) != SynergyHigh {
		t.Errorf("Expected High Synergy, got %q", Classify(score))
	}
}

func TestScoreCompetitionCustomerPenalty(t *testing.T) {
	competition := core.InsightCard{Type: core.InsightCompetition, Confidence: 0.5}
	customer := core.InsightCard{Type: core.InsightCustomer, Confidence: 0.5}
	market := core.InsightCard{Type: core.InsightMarket, Confidence: 0.5}

	penalized := Score(competition, customer)
	if penalized != 50-10+5 {
		t.Errorf("Expected 45 for competition/customer, got %d", penalized)
	}
	if penalized >= Score(market, customer) {
		t.Error("Competition/customer should score below market/customer")
	}
}

func TestScoreSameTypeBonus(t *testing.T) {
	a := core.InsightCard{Type: core.InsightLocal, Confidence: 0.5}
	b := core.InsightCard{Type: core.InsightLocal, Confidence: 0.5}

	// 50 base + 10 same type + 5 confidence average
	if got := Score(a, b); got != 65 {
		t.Errorf("Expected 65 for same-type pair, got %d", got)
	}
}

func TestScoreTimeSensitivity(t *testing.T) {
	a := core.InsightCard{Type: core.InsightMarket, Confidence: 0.5}
	b := core.InsightCard{Type: core.InsightCompetition, Confidence: 0.5}

	neither := Score(a, b)

	a.IsTimeSensitive = true
	one := Score(a, b)
	if one-neither != 5 {
		t.Errorf("Single time-sensitive card should add 5, got %d", one-neither)
	}

	b.IsTimeSensitive = true
	both := Score(a, b)
	if both-neither != 10 {
		t.Errorf("Both time-sensitive should add 10, got %d", both-neither)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		score int
		want  SynergyClassification
	}{
		{100, SynergyHigh},
		{90, SynergyHigh},
		{89, SynergyGood},
		{70, SynergyGood},
		{69, SynergyConflict},
		{0, SynergyConflict},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
