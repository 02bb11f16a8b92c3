package normalize

import (
	"time"
)

// ISOLayout is the serialized timestamp form used on issue and
// expiration dates.
const ISOLayout = "2006-01-02T15:04:05"

// dateLayouts are tried in order. Numeric dates parse month-first:
// every source registry is a North American export, so "7/10/2022" is
// July 10. That convention is pinned here once rather than guessed
// per record.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006 15:04",
	"1/2/2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"20060102",
}

// ParseTime parses a raw date value into a time. It accepts native
// time values and strings in any of the formats the registries have
// shipped; anything unparseable yields nil.
func ParseTime(value any) *time.Time {
	if t, ok := value.(time.Time); ok {
		if t.IsZero() {
			return nil
		}

		return &t
	}

	s := CleanString(value)
	if s == nil {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, *s)
		if err != nil {
			continue
		}

		return &t
	}

	return nil
}

// ParseDate parses a raw date value into an ISO-8601 timestamp
// string. A parse failure degrades to nil so a bad date never costs
// the whole record.
func ParseDate(value any) *string {
	t := ParseTime(value)
	if t == nil {
		return nil
	}

	s := t.Format(ISOLayout)

	return &s
}
