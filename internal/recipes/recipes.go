package recipes

import (
	"fmt"
	"sort"

	"insightmix/internal/core"
)

// The static recipe catalog. Read-only at runtime; Apply never mutates it.

var (
	// ViralContent chases reach: market momentum plus an opening to ride.
	ViralContent = core.Recipe{
		ID:                  "viral-content",
		Name:                "Viral Content",
		Description:         "Ride a market trend into a shareable moment",
		Icon:                "🚀",
		InsightTypes:        []core.InsightType{core.InsightMarket, core.InsightOpportunity},
		MinInsights:         2,
		MaxInsights:         5,
		PrimaryFramework:    "trend-jacking",
		CompatibleTemplates: []string{"short-video", "social-post"},
	}

	// LocalHero leans on neighborhood moments and the customers who care.
	LocalHero = core.Recipe{
		ID:                  "local-hero",
		Name:                "Local Hero",
		Description:         "Anchor the business in a nearby moment",
		Icon:                "📍",
		InsightTypes:        []core.InsightType{core.InsightLocal, core.InsightCustomer},
		MinInsights:         2,
		MaxInsights:         4,
		PrimaryFramework:    "community-first",
		CompatibleTemplates: []string{"event-promo", "social-post"},
	}

	// CompetitiveEdge turns competitor blind spots into differentiation.
	CompetitiveEdge = core.Recipe{
		ID:                  "competitive-edge",
		Name:                "Competitive Edge",
		Description:         "Turn a competitor gap into a clear differentiator",
		Icon:                "⚔️",
		InsightTypes:        []core.InsightType{core.InsightCompetition, core.InsightOpportunity},
		MinInsights:         2,
		MaxInsights:         4,
		PrimaryFramework:    "differentiation",
		CompatibleTemplates: []string{"comparison-page", "ad-copy"},
	}

	// CustomerChampion speaks directly to customer psychology.
	CustomerChampion = core.Recipe{
		ID:                  "customer-champion",
		Name:                "Customer Champion",
		Description:         "Speak to what customers actually feel and need",
		Icon:                "❤️",
		InsightTypes:        []core.InsightType{core.InsightCustomer},
		MinInsights:         1,
		MaxInsights:         3,
		PrimaryFramework:    "empathy-led",
		CompatibleTemplates: []string{"testimonial-story", "email"},
	}

	// MarketMover mixes broad market reads with customer demand.
	MarketMover = core.Recipe{
		ID:                  "market-mover",
		Name:                "Market Mover",
		Description:         "Pair market movement with real customer demand",
		Icon:                "📈",
		InsightTypes:        []core.InsightType{core.InsightMarket, core.InsightCustomer},
		MinInsights:         2,
		MaxInsights:         5,
		PrimaryFramework:    "authority-building",
		CompatibleTemplates: []string{"blog-post", "newsletter"},
	}
)

// Catalog returns the full recipe catalog in display order.
func Catalog() []core.Recipe {
	return []core.Recipe{ViralContent, LocalHero, CompetitiveEdge, CustomerChampion, MarketMover}
}

// Lookup finds a recipe by id.
func Lookup(id string) (core.Recipe, error) {
	for _, recipe := range Catalog() {
		if recipe.ID == id {
			return recipe, nil
		}
	}
	return core.Recipe{}, fmt.Errorf("unknown recipe %q", id)
}

// Apply selects the insights that qualify for a recipe: cards whose type
// is in the recipe's set, ranked by descending confidence, capped at
// MaxInsights. Fewer qualifying cards than MinInsights is not an error;
// the partial set is returned as-is. The result replaces the current
// selection wholesale.
func Apply(recipe core.Recipe, insights []core.InsightCard) []string {
	matching := make([]core.InsightCard, 0, len(insights))
	for _, card := range insights {
		if recipe.Matches(card) {
			matching = append(matching, card)
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Confidence > matching[j].Confidence
	})

	if recipe.MaxInsights > 0 && len(matching) > recipe.MaxInsights {
		matching = matching[:recipe.MaxInsights]
	}

	ids := make([]string, len(matching))
	for i, card := range matching {
		ids[i] = card.ID
	}
	return ids
}
