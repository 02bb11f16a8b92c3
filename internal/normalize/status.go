package normalize

import (
	"strings"
)

// Canonical license statuses.
const (
	StatusActive       = "Active"
	StatusInactive     = "Inactive"
	StatusPending      = "Pending"
	StatusSuspended    = "Suspended"
	StatusExpired      = "Expired"
	StatusDenied       = "Denied"
	StatusRevoked      = "Revoked"
	StatusPrequalified = "Prequalified"
	StatusUnknown      = "Unknown"
)

// StatusRule maps a lowercase keyword to a canonical status.
type StatusRule struct {
	Keyword string
	Status  string
}

// CanonicalizeStatus resolves a raw status string against an ordered
// rule table. Rules are checked in order and the first keyword found
// in the lowered text wins; order matters because some registry
// statuses contain other statuses as substrings ("inactive" contains
// "active"). Text matching no rule, and absent text, both yield the
// fallback.
func CanonicalizeStatus(text *string, rules []StatusRule, fallback string) string {
	if text == nil {
		return fallback
	}

	lowered := strings.ToLower(strings.TrimSpace(*text))
	if lowered == "" {
		return fallback
	}

	for _, rule := range rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Status
		}
	}

	return fallback
}
