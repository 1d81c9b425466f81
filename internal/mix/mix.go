package mix

import (
	"sort"
	"strings"

	"insightmix/internal/core"
	"insightmix/internal/scoring"
)

// Selection is the user's current mix: an ordered, duplicate-free set of
// insight ids. It is owned by a single view and mutated only through
// Toggle, ReplaceAll, and Clear; handing the ids to the content generator
// never mutates it.
type Selection struct {
	ids []string
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle adds the id if absent and removes it if present.
func (s *Selection) Toggle(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// ReplaceAll swaps the selection wholesale, preserving order and dropping
// duplicates. Used by recipe application.
func (s *Selection) ReplaceAll(ids []string) {
	seen := make(map[string]bool, len(ids))
	replaced := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			replaced = append(replaced, id)
		}
	}
	s.ids = replaced
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// Contains reports selection membership.
func (s *Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in insertion order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.ids) == 0
}

// Cards resolves the selection back to cards, in selection order. Ids with
// no matching card are skipped.
func (s *Selection) Cards(all []core.InsightCard) []core.InsightCard {
	byID := make(map[string]core.InsightCard, len(all))
	for _, card := range all {
		byID[card.ID] = card
	}
	var cards []core.InsightCard
	for _, id := range s.ids {
		if card, ok := byID[id]; ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Explicit upstream validation labels mapped to tier priorities. The
// explicit label wins over source-count inference when both are present.
var validationLabelTiers = map[string]int{
	"cross-validated": 5,
	"triangulated":    4,
	"corroborated":    3,
	"emerging":        2,
	"early-indicator": 1,
}

// ValidationTier derives a card's coarse corroboration tier, 1 (lowest)
// through 5 (highest). An explicit upstream validation label is canonical;
// otherwise the tier comes from how many independent sources the card has.
func ValidationTier(card core.InsightCard) int {
	if tier, ok := validationLabelTiers[strings.ToLower(strings.TrimSpace(card.Validation))]; ok {
		return tier
	}
	switch n := len(card.Sources); {
	case n >= 5:
		return 5
	case n == 4:
		return 4
	case n == 3:
		return 3
	case n == 2:
		return 2
	default:
		return 1
	}
}

// FilterAll is the type filter that passes every card.
const FilterAll = "all"

// DisplayOrder produces the filtered, ordered card sequence the view
// renders: filter by the active type, then stable-sort by descending
// validation tier, selected cards before unselected, then descending
// blended score. Cards that tie on all three keys keep their input order.
func DisplayOrder(cards []core.InsightCard, selection *Selection, activeType string) []core.InsightCard {
	filtered := make([]core.InsightCard, 0, len(cards))
	for _, card := range cards {
		if activeType == FilterAll || activeType == "" || string(card.Type) == activeType {
			filtered = append(filtered, card)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		tierA, tierB := ValidationTier(a), ValidationTier(b)
		if tierA != tierB {
			return tierA > tierB
		}

		selA, selB := selection.Contains(a.ID), selection.Contains(b.ID)
		if selA != selB {
			return selA
		}

		return scoring.BlendedScore(a) > scoring.BlendedScore(b)
	})

	return filtered
}
