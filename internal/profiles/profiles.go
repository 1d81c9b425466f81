package profiles

import (
	"regexp"
	"strings"

	"insightmix/internal/core"
)

// Audience profile tags surfaced next to a card. Tags are informational
// only; nothing downstream branches on them.
const (
	TagDecisionMakers    = "Decision Makers"
	TagBudgetConscious   = "Budget Conscious"
	TagTimePressed       = "Time-Pressed"
	TagGrowthFocused     = "Growth-Focused"
	TagRiskAverse        = "Risk-Averse"
	TagInnovationSeekers = "Innovation Seekers"
	TagGeneralAudience   = "General Audience"
)

// profileRule pairs a keyword pattern with the tag it contributes.
type profileRule struct {
	pattern *regexp.Regexp
	tag     string
}

// Checked in declaration order; every matching rule appends its tag.
var profileRules = []profileRule{
	{regexp.MustCompile(`\b(owner|founder|manager|executive|director|ceo|decision)s?\b`), TagDecisionMakers},
	{regexp.MustCompile(`\b(budget|cost|price|pricing|afford\w*|cheap|expensive|value for money|savings?)\b`), TagBudgetConscious},
	{regexp.MustCompile(`\b(busy|time-sav\w*|quick|fast|instant|deadline|no time|convenien\w*)\b`), TagTimePressed},
	{regexp.MustCompile(`\b(grow\w*|scale|scaling|expand\w*|revenue|sales|more customers)\b`), TagGrowthFocused},
	{regexp.MustCompile(`\b(safe|safety|risk|guarantee\w*|proven|reliab\w*|trust\w*)\b`), TagRiskAverse},
	{regexp.MustCompile(`\b(new|innovat\w*|cutting.edge|latest|modern|ai|automat\w*|tech\w*)\b`), TagInnovationSeekers},
}

// MatchProfiles maps a card's free text onto audience profile tags. The
// check order is fixed so the returned tags are deterministic. A card that
// matches nothing gets the general-audience fallback, so the result is
// never empty.
func MatchProfiles(card core.InsightCard) []string {
	text := strings.ToLower(card.Title + " " + card.Description + " " + card.ActionableInsight)

	var tags []string
	for _, rule := range profileRules {
		if rule.pattern.MatchString(text) {
			tags = append(tags, rule.tag)
		}
	}
	if len(tags) == 0 {
		return []string{TagGeneralAudience}
	}
	return tags
}
