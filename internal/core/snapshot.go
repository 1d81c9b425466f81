package core

// ContextSnapshot bundles the optional upstream intelligence sections.
// Any slice may be nil or empty; an absent section simply contributes
// zero cards during normalization. The snapshot is treated as immutable
// once received.
type ContextSnapshot struct {
	Trends             []Trend             `json:"trends,omitempty"`
	PsychologyNeeds    []PsychologyNeed    `json:"psychology_needs,omitempty"`
	CompetitorGaps     []CompetitorGap     `json:"competitor_gaps,omitempty"`
	MarketGaps         []MarketGap         `json:"market_gaps,omitempty"`
	LocalEvents        []LocalEvent        `json:"local_events,omitempty"`
	DataPoints         []DataPoint         `json:"data_points,omitempty"`
	CorrelatedInsights []CorrelatedInsight `json:"correlated_insights,omitempty"`
	Breakthroughs      []Breakthrough      `json:"breakthroughs,omitempty"`
}

// Trend is an industry trend observed upstream.
type Trend struct {
	Trend         string   `json:"trend"`                    // Free-text trend statement
	Category      string   `json:"category,omitempty"`       // Grouping label
	Confidence    float64  `json:"confidence,omitempty"`     // Optional confidence in [0, 1]
	TimeSensitive bool     `json:"time_sensitive,omitempty"` // Whether the trend is perishable
	Evidence      string   `json:"evidence,omitempty"`       // Semicolon-delimited evidence string
	Source        string   `json:"source,omitempty"`         // Raw platform string
	Examples      []string `json:"examples,omitempty"`       // Raw example snippets
	ObservedAt    string   `json:"observed_at,omitempty"`    // Raw timestamp string
}

// PsychologyNeed is a customer-psychology finding.
type PsychologyNeed struct {
	Need          string   `json:"need"`                     // Free-text need statement
	Category      string   `json:"category,omitempty"`       // Grouping label (e.g. "Pain Point")
	Confidence    float64  `json:"confidence,omitempty"`     // Optional confidence in [0, 1]
	TimeSensitive bool     `json:"time_sensitive,omitempty"` // Whether the need is perishable
	Evidence      []string `json:"evidence,omitempty"`       // Evidence fragments
	Source        string   `json:"source,omitempty"`         // Raw platform string
	Quotes        []string `json:"quotes,omitempty"`         // Raw customer quotes
	Action        string   `json:"action,omitempty"`         // Suggested action
	ObservedAt    string   `json:"observed_at,omitempty"`    // Raw timestamp string
}

// CompetitorGap is a blind spot or weakness observed in a competitor.
type CompetitorGap struct {
	Gap        string  `json:"gap"`                   // Free-text gap statement
	Competitor string  `json:"competitor,omitempty"`  // Competitor name
	Confidence float64 `json:"confidence,omitempty"`  // Optional confidence in [0, 1]
	Evidence   string  `json:"evidence,omitempty"`    // Semicolon-delimited evidence string
	Source     string  `json:"source,omitempty"`      // Raw platform string
	ObservedAt string  `json:"observed_at,omitempty"` // Raw timestamp string
}

// MarketGap is an underserved demand observed in the market.
type MarketGap struct {
	Gap        string  `json:"gap"`                   // Free-text gap statement
	Category   string  `json:"category,omitempty"`    // Grouping label
	Confidence float64 `json:"confidence,omitempty"`  // Optional confidence in [0, 1]
	Evidence   string  `json:"evidence,omitempty"`    // Semicolon-delimited evidence string
	Source     string  `json:"source,omitempty"`      // Raw platform string
	ObservedAt string  `json:"observed_at,omitempty"` // Raw timestamp string
}

// LocalEvent is a nearby event or neighborhood moment.
type LocalEvent struct {
	Event      string  `json:"event"`                 // Free-text event description
	Venue      string  `json:"venue,omitempty"`       // Where the event happens
	Date       string  `json:"date,omitempty"`        // Raw event date string
	Relevance  string  `json:"relevance,omitempty"`   // Why the event matters
	Confidence float64 `json:"confidence,omitempty"`  // Optional confidence in [0, 1]
	Source     string  `json:"source,omitempty"`      // Raw platform string
	ObservedAt string  `json:"observed_at,omitempty"` // Raw timestamp string
}

// DataPoint is a raw observed metric or fact.
type DataPoint struct {
	Observation string  `json:"observation"`           // Free-text observation
	Metric      string  `json:"metric,omitempty"`      // Metric name, if any
	Value       string  `json:"value,omitempty"`       // Observed value, if any
	Confidence  float64 `json:"confidence,omitempty"`  // Optional confidence in [0, 1]
	Source      string  `json:"source,omitempty"`      // Raw platform string
	ObservedAt  string  `json:"observed_at,omitempty"` // Raw timestamp string
}

// CorrelatedInsight links observations from multiple sources into one finding.
type CorrelatedInsight struct {
	Insight       string   `json:"insight"`                  // Free-text correlated finding
	Category      string   `json:"category,omitempty"`       // Grouping label
	Confidence    float64  `json:"confidence,omitempty"`     // Optional confidence in [0, 1]
	TimeSensitive bool     `json:"time_sensitive,omitempty"` // Whether the window is closing
	Sources       []string `json:"sources,omitempty"`        // Raw platform strings that corroborate
	Validation    string   `json:"validation,omitempty"`     // Explicit validation label
	Action        string   `json:"action,omitempty"`         // Suggested action
	ObservedAt    string   `json:"observed_at,omitempty"`    // Raw timestamp string
}

// Breakthrough is a high-signal opportunity surfaced upstream.
type Breakthrough struct {
	Breakthrough  string   `json:"breakthrough"`             // Free-text breakthrough statement
	Category      string   `json:"category,omitempty"`       // Grouping label
	Confidence    float64  `json:"confidence,omitempty"`     // Optional confidence in [0, 1]
	TimeSensitive bool     `json:"time_sensitive,omitempty"` // Whether the window is closing
	Evidence      []string `json:"evidence,omitempty"`       // Evidence fragments
	Sources       []string `json:"sources,omitempty"`        // Raw platform strings that corroborate
	Validation    string   `json:"validation,omitempty"`     // Explicit validation label
	Action        string   `json:"action,omitempty"`         // Suggested action
	ObservedAt    string   `json:"observed_at,omitempty"`    // Raw timestamp string
}
