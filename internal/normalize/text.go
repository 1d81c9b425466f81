package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTitleRunes = 60

// connector words that mark the end of the leading clause of a sentence.
var clauseConnectors = []string{" that ", " which ", " because ", " so that "}

// deriveTitle extracts a short display title from free-form source text:
// the first clause (split on comma/period or a connector word), truncated
// to maxTitleRunes with an ellipsis when longer. The result is always a
// prefix of the cleaned source text.
func deriveTitle(text string) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}

	cut := len(clean)
	for _, sep := range []string{",", "."} {
		if idx := strings.Index(clean, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	for _, conn := range clauseConnectors {
		if idx := strings.Index(strings.ToLower(clean), conn); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	clause := strings.TrimSpace(clean[:cut])

	if utf8.RuneCountInString(clause) <= maxTitleRunes {
		return clause
	}
	runes := []rune(clause)
	return strings.TrimSpace(string(runes[:maxTitleRunes])) + "..."
}

// splitEvidence splits a semicolon-delimited evidence string into trimmed
// non-empty segments.
func splitEvidence(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	evidence := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			evidence = append(evidence, trimmed)
		}
	}
	return evidence
}

// platformRule maps raw source substrings to a canonical platform name.
type platformRule struct {
	substrings []string // all must be present (lower-cased match)
	name       string
}

// Ordered: first matching rule wins.
var platformRules = []platformRule{
	{[]string{"google", "review"}, "Google Reviews"},
	{[]string{"google", "map"}, "Google Maps"},
	{[]string{"youtube"}, "YouTube"},
	{[]string{"instagram"}, "Instagram"},
	{[]string{"tiktok"}, "TikTok"},
	{[]string{"facebook"}, "Facebook"},
	{[]string{"reddit"}, "Reddit"},
	{[]string{"yelp"}, "Yelp"},
	{[]string{"twitter"}, "Twitter/X"},
	{[]string{"linkedin"}, "LinkedIn"},
	{[]string{"nextdoor"}, "Nextdoor"},
}

// canonicalPlatform maps a raw source string onto a canonical platform
// name. Unmatched strings pass through with the first letter capitalized.
func canonicalPlatform(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for _, rule := range platformRules {
		matched := true
		for _, sub := range rule.substrings {
			if !strings.Contains(lower, sub) {
				matched = false
				break
			}
		}
		if matched {
			return rule.name
		}
	}
	return strings.ToUpper(trimmed[:1]) + trimmed[1:]
}

// extractQuote picks the first candidate that looks like a real quote: it
// contains a quote mark or is longer than 20 characters. Leading and
// trailing quote characters are stripped from the result.
func extractQuote(candidates []string) string {
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		if strings.ContainsAny(trimmed, `"'“”`) || len(trimmed) > 20 {
			return strings.Trim(trimmed, `"'“”`)
		}
	}
	return ""
}

// timestampLayouts are tried in order when parsing raw upstream timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// relativeTime renders a raw timestamp string as a human-readable relative
// time against now. Malformed timestamps pass through unchanged.
func relativeTime(raw string, now time.Time) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	var parsed time.Time
	ok := false
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return trimmed
	}

	days := int(now.Sub(parsed).Hours() / 24)
	switch {
	case days < 1:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		return parsed.Format("Jan 2006")
	}
}
