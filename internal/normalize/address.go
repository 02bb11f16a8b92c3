package normalize

import (
	"strings"
)

// AssembleAddress joins the non-absent components with ", " in the
// order given, leaving no stray separators. It returns an empty
// string, not nil, when every component is absent: an address is a
// display value, not a keyed field.
func AssembleAddress(parts ...*string) string {
	kept := make([]string, 0, len(parts))

	for _, p := range parts {
		if p == nil {
			continue
		}

		trimmed := strings.TrimSpace(*p)
		if trimmed == "" {
			continue
		}

		kept = append(kept, trimmed)
	}

	return strings.Join(kept, ", ")
}
