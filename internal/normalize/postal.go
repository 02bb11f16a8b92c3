package normalize

import (
	"regexp"
	"strings"
)

// canadianPostal matches the Canadian postal pattern A1A 1A1, with or
// without the interior space.
var canadianPostal = regexp.MustCompile(`(?i)[A-Z]\d[A-Z]\s?\d[A-Z]\d`)

// ExtractPostalCode resolves a postal code, preferring an explicit
// postal field when non-empty and otherwise scanning the free-text
// address for the Canadian pattern. Matches are uppercased with the
// canonical "A1A 1A1" spacing; an explicit value that is not
// Canadian-shaped (a US ZIP, say) is returned trimmed as-is.
func ExtractPostalCode(address, explicit any) *string {
	if p := CleanString(explicit); p != nil {
		if canadianPostal.MatchString(*p) {
			formatted := canonicalPostal(canadianPostal.FindString(*p))

			return &formatted
		}

		return p
	}

	a := CleanString(address)
	if a == nil {
		return nil
	}

	match := canadianPostal.FindString(*a)
	if match == "" {
		return nil
	}

	formatted := canonicalPostal(match)

	return &formatted
}

// canonicalPostal uppercases and re-spaces a matched postal code.
func canonicalPostal(s string) string {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(s) == 6 {
		return s[:3] + " " + s[3:]
	}

	return s
}
