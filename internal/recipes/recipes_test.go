package recipes

import (
	"reflect"
	"testing"

	"insightmix/internal/core"
)

func TestCatalogInvariants(t *testing.T) {
	catalog := Catalog()
	if len(catalog) == 0 {
		t.Fatal("Catalog must not be empty")
	}

	seen := map[string]bool{}
	for _, recipe := range catalog {
		if recipe.ID == "" {
			t.Error("Recipe id must not be empty")
		}
		if seen[recipe.ID] {
			t.Errorf("Duplicate recipe id %q", recipe.ID)
		}
		seen[recipe.ID] = true

		if len(recipe.InsightTypes) == 0 {
			t.Errorf("Recipe %q must declare at least one insight type", recipe.ID)
		}
		if recipe.MinInsights > recipe.MaxInsights {
			t.Errorf("Recipe %q: min %d exceeds max %d", recipe.ID, recipe.MinInsights, recipe.MaxInsights)
		}
		for _, insightType := range recipe.InsightTypes {
			if !insightType.Valid() {
				t.Errorf("Recipe %q declares invalid type %q", recipe.ID, insightType)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	recipe, err := Lookup("viral-content")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if recipe.Name != "Viral Content" {
		t.Errorf("Unexpected recipe name %q", recipe.Name)
	}

	if _, err := Lookup("no-such-recipe"); err == nil {
		t.Error("Expected error for unknown recipe id")
	}
}

func TestApplyViralContent(t *testing.T) {
	pool := []core.InsightCard{
		{ID: "market-0", Type: core.InsightMarket, Confidence: 0.7},
		{ID: "need-0", Type: core.InsightCustomer, Confidence: 0.99},
		{ID: "market-1", Type: core.InsightMarket, Confidence: 0.9},
		{ID: "breakthrough-0", Type: core.InsightOpportunity, Confidence: 0.8},
	}

	ids := Apply(ViralContent, pool)
	want := []string{"market-1", "breakthrough-0", "market-0"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Apply = %v, want %v (descending confidence, matching types only)", ids, want)
	}
}

func TestApplyRespectsMaxInsights(t *testing.T) {
	var pool []core.InsightCard
	for i := 0; i < 20; i++ {
		pool = append(pool, core.InsightCard{
			ID:         string(rune('a' + i)),
			Type:       core.InsightMarket,
			Confidence: float64(i) / 20,
		})
	}

	for _, recipe := range Catalog() {
		ids := Apply(recipe, pool)
		if len(ids) > recipe.MaxInsights {
			t.Errorf("Recipe %q selected %d insights, max is %d", recipe.ID, len(ids), recipe.MaxInsights)
		}
	}
}

func TestApplyTypeMembership(t *testing.T) {
	pool := []core.InsightCard{
		{ID: "local-0", Type: core.InsightLocal, Confidence: 0.9},
		{ID: "need-0", Type: core.InsightCustomer, Confidence: 0.8},
		{ID: "competitor-0", Type: core.InsightCompetition, Confidence: 0.95},
	}

	byID := map[string]core.InsightCard{}
	for _, card := range pool {
		byID[card.ID] = card
	}

	for _, recipe := range Catalog() {
		for _, id := range Apply(recipe, pool) {
			if !recipe.Matches(byID[id]) {
				t.Errorf("Recipe %q selected %q whose type %q is not allowed",
					recipe.ID, id, byID[id].Type)
			}
		}
	}
}

func TestApplyUnderMatchReturnsPartial(t *testing.T) {
	pool := []core.InsightCard{
		{ID: "local-0", Type: core.InsightLocal, Confidence: 0.9},
	}

	// LocalHero wants at least 2 insights, but only 1 qualifies; the
	// partial set comes back rather than an error.
	ids := Apply(LocalHero, pool)
	if len(ids) != 1 || ids[0] != "local-0" {
		t.Errorf("Expected partial selection [local-0], got %v", ids)
	}
}
