package mix

import (
	"reflect"
	"testing"

	"insightmix/internal/core"
)

func TestToggleDoubleApplication(t *testing.T) {
	selection := NewSelection()
	selection.Toggle("trend-0")
	selection.Toggle("need-1")

	before := selection.IDs()
	selection.Toggle("breakthrough-0")
	selection.Toggle("breakthrough-0")

	if !reflect.DeepEqual(selection.IDs(), before) {
		t.Errorf("Double toggle should restore the selection: %v vs %v", selection.IDs(), before)
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	selection := NewSelection()

	selection.Toggle("trend-0")
	if !selection.Contains("trend-0") {
		t.Error("Toggle should add an absent id")
	}
	selection.Toggle("trend-0")
	if selection.Contains("trend-0") {
		t.Error("Toggle should remove a present id")
	}
	if !selection.Empty() {
		t.Error("Selection should be empty again")
	}
}

func TestReplaceAllDeduplicates(t *testing.T) {
	selection := NewSelection()
	selection.Toggle("old-0")

	selection.ReplaceAll([]string{"a", "b", "a", "c", "b"})
	if !reflect.DeepEqual(selection.IDs(), []string{"a", "b", "c"}) {
		t.Errorf("ReplaceAll should dedup preserving order, got %v", selection.IDs())
	}
	if selection.Contains("old-0") {
		t.Error("ReplaceAll should drop the previous selection wholesale")
	}
}

func TestClear(t *testing.T) {
	selection := NewSelection()
	selection.Toggle("a")
	selection.Toggle("b")
	selection.Clear()

	if !selection.Empty() || selection.Len() != 0 {
		t.Error("Clear should empty the selection")
	}
}

func TestSelectionCards(t *testing.T) {
	all := []core.InsightCard{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	}
	selection := NewSelection()
	selection.Toggle("b")
	selection.Toggle("missing")
	selection.Toggle("a")

	cards := selection.Cards(all)
	if len(cards) != 2 || cards[0].ID != "b" || cards[1].ID != "a" {
		t.Errorf("Cards should resolve in selection order, skipping unknowns: %v", cards)
	}
}

func TestValidationTierFromSources(t *testing.T) {
	cases := []struct {
		sources int
		want    int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {8, 5},
	}
	for _, tc := range cases {
		card := core.InsightCard{Sources: make([]core.InsightSource, tc.sources)}
		if got := ValidationTier(card); got != tc.want {
			t.Errorf("ValidationTier with %d sources = %d, want %d", tc.sources, got, tc.want)
		}
	}
}

func TestValidationTierExplicitLabelWins(t *testing.T) {
	// Three sources would infer tier 3, but the explicit label is canonical.
	card := core.InsightCard{
		Validation: "early-indicator",
		Sources:    make([]core.InsightSource, 3),
	}
	if got := ValidationTier(card); got != 1 {
		t.Errorf("Explicit label should win over source count, got tier %d", got)
	}

	card.Validation = "cross-validated"
	if got := ValidationTier(card); got != 5 {
		t.Errorf("Expected tier 5 for cross-validated, got %d", got)
	}

	card.Validation = "some unknown label"
	if got := ValidationTier(card); got != 3 {
		t.Errorf("Unknown label should fall back to source count, got %d", got)
	}
}

func TestDisplayOrderFilters(t *testing.T) {
	cards := []core.InsightCard{
		{ID: "a", Type: core.InsightCustomer, Confidence: 0.5},
		{ID: "b", Type: core.InsightMarket, Confidence: 0.5},
	}
	selection := NewSelection()

	customerOnly := DisplayOrder(cards, selection, "customer")
	if len(customerOnly) != 1 || customerOnly[0].ID != "a" {
		t.Errorf("Type filter failed: %v", customerOnly)
	}

	all := DisplayOrder(cards, selection, FilterAll)
	if len(all) != 2 {
		t.Errorf("FilterAll should pass every card, got %d", len(all))
	}
}

func TestDisplayOrderTierBeatsScore(t *testing.T) {
	lowTierHighScore := core.InsightCard{
		ID: "hot", Type: core.InsightCustomer, Category: "Pain Point Fear",
		Confidence: 1.0, IsTimeSensitive: true,
	}
	highTierLowScore := core.InsightCard{
		ID: "validated", Type: core.InsightMarket, Confidence: 0.1,
		Sources: make([]core.InsightSource, 5),
	}

	ordered := DisplayOrder([]core.InsightCard{lowTierHighScore, highTierLowScore}, NewSelection(), FilterAll)
	if ordered[0].ID != "validated" {
		t.Errorf("Validation tier must dominate the sort, got %q first", ordered[0].ID)
	}
}

func TestDisplayOrderSelectedBeforeUnselected(t *testing.T) {
	cards := []core.InsightCard{
		{ID: "a", Type: core.InsightMarket, Confidence: 0.9},
		{ID: "b", Type: core.InsightMarket, Confidence: 0.2},
	}
	selection := NewSelection()
	selection.Toggle("b")

	ordered := DisplayOrder(cards, selection, FilterAll)
	if ordered[0].ID != "b" {
		t.Errorf("Selected cards sort before unselected within a tier, got %q first", ordered[0].ID)
	}
}

func TestDisplayOrderStable(t *testing.T) {
	// Identical tier, selection state, and blended score: input order holds.
	twin := func(id string) core.InsightCard {
		return core.InsightCard{ID: id, Type: core.InsightMarket, Confidence: 0.5}
	}
	cards := []core.InsightCard{twin("first"), twin("second"), twin("third")}

	ordered := DisplayOrder(cards, NewSelection(), FilterAll)
	got := []string{ordered[0].ID, ordered[1].ID, ordered[2].ID}
	if !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("Sort must be stable on full ties, got %v", got)
	}
}

func TestDisplayOrderDoesNotMutateInput(t *testing.T) {
	cards := []core.InsightCard{
		{ID: "a", Type: core.InsightMarket, Confidence: 0.1},
		{ID: "b", Type: core.InsightMarket, Confidence: 0.9},
	}
	DisplayOrder(cards, NewSelection(), FilterAll)
	if cards[0].ID != "a" || cards[1].ID != "b" {
		t.Error("DisplayOrder must not reorder the caller's slice")
	}
}
