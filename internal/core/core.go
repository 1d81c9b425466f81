package core

import "time"

// InsightType classifies an insight by the kind of intelligence it carries.
type InsightType string

const (
	InsightCustomer    InsightType = "customer"    // Customer psychology and needs
	InsightMarket      InsightType = "market"      // Industry trends and market gaps
	InsightCompetition InsightType = "competition" // Competitor blind spots and weaknesses
	InsightLocal       InsightType = "local"       // Local events and neighborhood moments
	InsightOpportunity InsightType = "opportunity" // Breakthroughs and correlated openings
)

// AllInsightTypes lists the closed set of valid insight types.
var AllInsightTypes = []InsightType{
	InsightCustomer,
	InsightMarket,
	InsightCompetition,
	InsightLocal,
	InsightOpportunity,
}

// Valid reports whether t is one of the enumerated insight types.
func (t InsightType) Valid() bool {
	for _, known := range AllInsightTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InsightSource describes one piece of corroborating evidence attached to a card.
type InsightSource struct {
	Platform  string `json:"platform"`            // Canonical platform name (e.g. "Google Reviews")
	Quote     string `json:"quote,omitempty"`     // Representative quote pulled from the raw data
	Timestamp string `json:"timestamp,omitempty"` // Human-readable relative time (e.g. "3 days ago")
}

// InsightCard is the uniform unit of work every upstream record normalizes into.
type InsightCard struct {
	ID                string          `json:"id"`                           // Stable source-prefixed identifier (e.g. "trend-3")
	Type              InsightType     `json:"type"`                         // One of the five insight types
	Title             string          `json:"title"`                        // Short display title derived from source text
	Category          string          `json:"category"`                     // Free-text grouping label
	Confidence        float64         `json:"confidence"`                   // Confidence score in [0, 1]
	IsTimeSensitive   bool            `json:"is_time_sensitive"`            // Whether the insight has a limited shelf life
	Description       string          `json:"description,omitempty"`        // Longer explanation for display and scoring
	ActionableInsight string          `json:"actionable_insight,omitempty"` // Suggested action derived upstream
	Evidence          []string        `json:"evidence,omitempty"`           // Supporting evidence fragments
	Sources           []InsightSource `json:"sources,omitempty"`            // Corroborating sources
	Validation        string          `json:"validation,omitempty"`         // Explicit upstream validation label, if any
	RawData           string          `json:"raw_data,omitempty"`           // Opaque raw payload for display
}

// Recipe is a named, pre-declared filter+limit configuration used to
// auto-populate a selection. Recipes are static configuration and are
// never mutated at runtime.
type Recipe struct {
	ID                  string        `json:"id"`                             // Unique recipe identifier
	Name                string        `json:"name"`                           // Display name
	Description         string        `json:"description"`                    // One-line description
	Icon                string        `json:"icon"`                           // Emoji shown next to the name
	InsightTypes        []InsightType `json:"insight_types"`                  // Which insight types qualify (non-empty)
	MinInsights         int           `json:"min_insights"`                   // Lower bound on auto-selected cards
	MaxInsights         int           `json:"max_insights"`                   // Upper bound on auto-selected cards
	PrimaryFramework    string        `json:"primary_framework,omitempty"`    // Opaque hint passed to the content generator
	CompatibleTemplates []string      `json:"compatible_templates,omitempty"` // Downstream template names this recipe suits
}

// Matches reports whether a card's type qualifies for this recipe.
func (r Recipe) Matches(card InsightCard) bool {
	for _, t := range r.InsightTypes {
		if card.Type == t {
			return true
		}
	}
	return false
}

// ViewPreferences holds the small set of persisted UI preferences.
// Last write wins; these carry no invariants and never influence scoring.
type ViewPreferences struct {
	Tab            string `json:"tab"`             // Selected tab
	Mode           string `json:"mode"`            // Selected mode (e.g. "power")
	PanelCollapsed bool   `json:"panel_collapsed"` // Whether the mix panel is collapsed
}

// SavedMix is a named selection persisted for later reuse.
type SavedMix struct {
	ID         string    `json:"id"`          // Unique identifier for the saved mix
	Name       string    `json:"name"`        // User-supplied name
	InsightIDs []string  `json:"insight_ids"` // Ordered selected insight ids
	RecipeID   string    `json:"recipe_id"`   // Recipe that produced the mix, if any
	DateSaved  time.Time `json:"date_saved"`  // When the mix was saved
}

// GenerationRecord is an audit entry for one hand-off to the content generator.
type GenerationRecord struct {
	ID            string    `json:"id"`             // Unique identifier for the record
	InsightIDs    []string  `json:"insight_ids"`    // Ids handed to the generator
	Framework     string    `json:"framework"`      // Framework hint passed through, if any
	ModelUsed     string    `json:"model_used"`     // Model used by the generator
	Succeeded     bool      `json:"succeeded"`      // Whether the generator returned content
	Error         string    `json:"error"`          // Error text when the hand-off failed
	DateGenerated time.Time `json:"date_generated"` // When the hand-off happened
}
