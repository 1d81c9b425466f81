package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"insightmix/internal/core"
)

// Default confidences applied when an upstream record carries none.
const (
	defaultTrendConfidence        = 0.80
	defaultNeedConfidence         = 0.85
	defaultCompetitorConfidence   = 0.75
	defaultMarketGapConfidence    = 0.78
	defaultLocalEventConfidence   = 0.75
	defaultDataPointConfidence    = 0.75
	defaultCorrelatedConfidence   = 0.82
	defaultBreakthroughConfidence = 0.85
)

// minTitleRunes guards against empty upstream content producing junk cards.
const minTitleRunes = 3

// Normalizer converts a heterogeneous upstream context snapshot into a
// flat, uniform list of insight cards. It is a pure transformation: no
// I/O, no mutation of the snapshot, and absent sections contribute zero
// cards rather than errors.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer that timestamps against the wall clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerAt creates a normalizer pinned to a fixed clock, for
// deterministic relative-time rendering.
func NewNormalizerAt(now time.Time) *Normalizer {
	return &Normalizer{now: func() time.Time { return now }}
}

// Normalize flattens every present snapshot section into insight cards.
// Records whose derived title is degenerately short are skipped.
func (n *Normalizer) Normalize(snapshot core.ContextSnapshot) []core.InsightCard {
	cards := []core.InsightCard{}

	for i, trend := range snapshot.Trends {
		if card, ok := n.fromTrend(i, trend); ok {
			cards = append(cards, card)
		}
	}
	for i, need := range snapshot.PsychologyNeeds {
		if card, ok := n.fromPsychologyNeed(i, need); ok {
			cards = append(cards, card)
		}
	}
	for i, gap := range snapshot.CompetitorGaps {
		if card, ok := n.fromCompetitorGap(i, gap); ok {
			cards = append(cards, card)
		}
	}
	for i, gap := range snapshot.MarketGaps {
		if card, ok := n.fromMarketGap(i, gap); ok {
			cards = append(cards, card)
		}
	}
	for i, event := range snapshot.LocalEvents {
		if card, ok := n.fromLocalEvent(i, event); ok {
			cards = append(cards, card)
		}
	}
	for i, point := range snapshot.DataPoints {
		if card, ok := n.fromDataPoint(i, point); ok {
			cards = append(cards, card)
		}
	}
	for i, corr := range snapshot.CorrelatedInsights {
		if card, ok := n.fromCorrelatedInsight(i, corr); ok {
			cards = append(cards, card)
		}
	}
	for i, breakthrough := range snapshot.Breakthroughs {
		if card, ok := n.fromBreakthrough(i, breakthrough); ok {
			cards = append(cards, card)
		}
	}

	return cards
}

func (n *Normalizer) fromTrend(idx int, trend core.Trend) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(trend.Trend))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	return core.InsightCard{
		ID:              fmt.Sprintf("trend-%d", idx),
		Type:            core.InsightMarket,
		Title:           title,
		Category:        fallback(trend.Category, "Industry Trend"),
		Confidence:      confidenceOr(trend.Confidence, defaultTrendConfidence),
		IsTimeSensitive: trend.TimeSensitive,
		Description:     stripMarkup(trend.Trend),
		Evidence:        splitEvidence(trend.Evidence),
		Sources:         n.singleSource(trend.Source, trend.Examples, trend.ObservedAt),
	}, true
}

func (n *Normalizer) fromPsychologyNeed(idx int, need core.PsychologyNeed) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(need.Need))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	return core.InsightCard{
		ID:                fmt.Sprintf("need-%d", idx),
		Type:              core.InsightCustomer,
		Title:             title,
		Category:          fallback(need.Category, "Customer Psychology"),
		Confidence:        confidenceOr(need.Confidence, defaultNeedConfidence),
		IsTimeSensitive:   need.TimeSensitive,
		Description:       stripMarkup(need.Need),
		ActionableInsight: need.Action,
		Evidence:          trimNonEmpty(need.Evidence),
		Sources:           n.singleSource(need.Source, need.Quotes, need.ObservedAt),
	}, true
}

func (n *Normalizer) fromCompetitorGap(idx int, gap core.CompetitorGap) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(gap.Gap))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	category := "Competitive Gap"
	if gap.Competitor != "" {
		category = gap.Competitor
	}
	return core.InsightCard{
		ID:              fmt.Sprintf("competitor-%d", idx),
		Type:            core.InsightCompetition,
		Title:           title,
		Category:        category,
		Confidence:      confidenceOr(gap.Confidence, defaultCompetitorConfidence),
		IsTimeSensitive: false,
		Description:     stripMarkup(gap.Gap),
		Evidence:        splitEvidence(gap.Evidence),
		Sources:         n.singleSource(gap.Source, nil, gap.ObservedAt),
	}, true
}

func (n *Normalizer) fromMarketGap(idx int, gap core.MarketGap) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(gap.Gap))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	return core.InsightCard{
		ID:              fmt.Sprintf("market-%d", idx),
		Type:            core.InsightMarket,
		Title:           title,
		Category:        fallback(gap.Category, "Market Gap"),
		Confidence:      confidenceOr(gap.Confidence, defaultMarketGapConfidence),
		IsTimeSensitive: false,
		Description:     stripMarkup(gap.Gap),
		Evidence:        splitEvidence(gap.Evidence),
		Sources:         n.singleSource(gap.Source, nil, gap.ObservedAt),
	}, true
}

func (n *Normalizer) fromLocalEvent(idx int, event core.LocalEvent) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(event.Event))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	description := stripMarkup(event.Event)
	if event.Venue != "" {
		description += " @ " + event.Venue
	}
	return core.InsightCard{
		ID:                fmt.Sprintf("local-%d", idx),
		Type:              core.InsightLocal,
		Title:             title,
		Category:          "Local Moment",
		Confidence:        confidenceOr(event.Confidence, defaultLocalEventConfidence),
		IsTimeSensitive:   true, // local moments expire with the event
		Description:       description,
		ActionableInsight: event.Relevance,
		Sources:           n.singleSource(event.Source, nil, event.ObservedAt),
	}, true
}

func (n *Normalizer) fromDataPoint(idx int, point core.DataPoint) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(point.Observation))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	raw := point.Metric
	if point.Value != "" {
		raw = strings.TrimSpace(raw + " = " + point.Value)
	}
	return core.InsightCard{
		ID:          fmt.Sprintf("data-%d", idx),
		Type:        core.InsightMarket,
		Title:       title,
		Category:    "Data Point",
		Confidence:  confidenceOr(point.Confidence, defaultDataPointConfidence),
		Description: stripMarkup(point.Observation),
		RawData:     raw,
		Sources:     n.singleSource(point.Source, nil, point.ObservedAt),
	}, true
}

func (n *Normalizer) fromCorrelatedInsight(idx int, corr core.CorrelatedInsight) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(corr.Insight))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	return core.InsightCard{
		ID:                fmt.Sprintf("correlated-%d", idx),
		Type:              core.InsightOpportunity,
		Title:             title,
		Category:          fallback(corr.Category, "Correlated Insight"),
		Confidence:        confidenceOr(corr.Confidence, defaultCorrelatedConfidence),
		IsTimeSensitive:   corr.TimeSensitive,
		Description:       stripMarkup(corr.Insight),
		ActionableInsight: corr.Action,
		Validation:        corr.Validation,
		Sources:           n.multiSource(corr.Sources, corr.ObservedAt),
	}, true
}

func (n *Normalizer) fromBreakthrough(idx int, breakthrough core.Breakthrough) (core.InsightCard, bool) {
	title := deriveTitle(stripMarkup(breakthrough.Breakthrough))
	if utf8.RuneCountInString(title) < minTitleRunes {
		return core.InsightCard{}, false
	}
	return core.InsightCard{
		ID:                fmt.Sprintf("breakthrough-%d", idx),
		Type:              core.InsightOpportunity,
		Title:             title,
		Category:          fallback(breakthrough.Category, "Breakthrough"),
		Confidence:        confidenceOr(breakthrough.Confidence, defaultBreakthroughConfidence),
		IsTimeSensitive:   breakthrough.TimeSensitive,
		Description:       stripMarkup(breakthrough.Breakthrough),
		ActionableInsight: breakthrough.Action,
		Evidence:          trimNonEmpty(breakthrough.Evidence),
		Validation:        breakthrough.Validation,
		Sources:           n.multiSource(breakthrough.Sources, breakthrough.ObservedAt),
	}, true
}

// singleSource builds the one-entry sources list for records that carry a
// single raw platform string plus optional quote candidates.
func (n *Normalizer) singleSource(raw string, quoteCandidates []string, observedAt string) []core.InsightSource {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return []core.InsightSource{{
		Platform:  canonicalPlatform(raw),
		Quote:     extractQuote(quoteCandidates),
		Timestamp: relativeTime(observedAt, n.now()),
	}}
}

// multiSource builds one source entry per raw platform string, sharing the
// record's timestamp.
func (n *Normalizer) multiSource(raws []string, observedAt string) []core.InsightSource {
	var sources []core.InsightSource
	ts := relativeTime(observedAt, n.now())
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		sources = append(sources, core.InsightSource{
			Platform:  canonicalPlatform(raw),
			Timestamp: ts,
		})
	}
	return sources
}

func confidenceOr(value, def float64) float64 {
	if value <= 0 {
		return def
	}
	if value > 1 {
		return 1
	}
	return value
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func trimNonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
