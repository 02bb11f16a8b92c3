package normalize

import (
	"strings"
)

// Canonical license-type categories.
const (
	TypeRetail           = "retail"
	TypeCultivation      = "cultivation"
	TypeProcessing       = "processing"
	TypeDistribution     = "distribution"
	TypeTesting          = "testing"
	TypeTransport        = "transport"
	TypeMedical          = "medical"
	TypeOptionalPremises = "optional_premises"
	TypeEntity           = "entity"
	TypeOther            = "other"
)

// Rule pairs a category with the keywords that select it.
type Rule struct {
	Category string
	Keywords []string
}

// Classifier is an ordered keyword table over the closed category
// set. Rules are evaluated in order and the first match wins: a name
// containing both cultivation and retail keywords classifies by rule
// priority, not by best match, so repeated calls always agree. Text
// matching no rule falls back to Default, which varies by
// jurisdiction to reflect its actual license mix.
type Classifier struct {
	Rules   []Rule
	Default string
}

// Classify lowercases and joins the given text fragments, then
// returns the first matching rule's category.
func (c Classifier) Classify(texts ...string) string {
	combined := strings.ToLower(strings.TrimSpace(strings.Join(texts, " ")))
	if combined == "" {
		return c.Default
	}

	for _, rule := range c.Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(combined, keyword) {
				return rule.Category
			}
		}
	}

	return c.Default
}

// SmokeShopRule classifies free text as a smoke shop by keyword
// membership. An exclude term vetoes the match: cannabis retailers
// whose names mention tobacco-adjacent words are not smoke shops.
type SmokeShopRule struct {
	Keywords []string
	Exclude  []string
}

// Match reports whether the combined text names a smoke shop.
func (r SmokeShopRule) Match(texts ...string) bool {
	combined := strings.ToLower(strings.TrimSpace(strings.Join(texts, " ")))
	if combined == "" {
		return false
	}

	for _, term := range r.Exclude {
		if strings.Contains(combined, term) {
			return false
		}
	}

	for _, keyword := range r.Keywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}

	return false
}
