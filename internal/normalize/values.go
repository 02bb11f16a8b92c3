// Package normalize provides the value-level cleaning and
// classification primitives shared by every jurisdiction extractor.
// All functions are pure and total: malformed input degrades to the
// absent sentinel (nil) or a documented default, never a panic.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Missing-value sentinels seen across the source exports.
var missingSentinels = map[string]bool{
	"none": true,
	"null": true,
	"n/a":  true,
	"nan":  true,
	".":    true,
}

// CleanString converts an arbitrary raw cell value to a trimmed
// string, or nil when the value is empty or one of the missing-data
// sentinels. It accepts any input type: registries hand back numbers
// and date cells where text is expected.
func CleanString(value any) *string {
	if value == nil {
		return nil
	}

	var s string

	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}

		s = *v
	case time.Time:
		s = v.Format("2006-01-02")
	case float64:
		// Spreadsheet readers surface integral cells as floats.
		if v == float64(int64(v)) {
			s = strconv.FormatInt(int64(v), 10)
		} else {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	if s == "" || missingSentinels[strings.ToLower(s)] {
		return nil
	}

	return &s
}

// Str returns a pointer to the given string. Extractors use it for
// literal components and fixed role labels.
func Str(s string) *string {
	return &s
}

// StrOrNil returns a pointer to the string, or nil when it is empty
// after trimming.
func StrOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// Deref returns the string value, or "" for the absent sentinel.
func Deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// Float coerces a raw value to a float64, or nil when it cannot be
// read as a number.
func Float(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)

		return &f
	case int:
		f := float64(v)

		return &f
	case int64:
		f := float64(v)

		return &f
	}

	s := CleanString(value)
	if s == nil {
		return nil
	}

	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}

	return &f
}

// Int64 coerces a raw value to an int64, or nil when it cannot be
// read as an integer. JSON decoding yields float64 for numeric
// attributes, so integral floats are accepted.
func Int64(value any) *int64 {
	switch v := value.(type) {
	case int64:
		return &v
	case int:
		n := int64(v)

		return &n
	case float64:
		if v == float64(int64(v)) {
			n := int64(v)

			return &n
		}

		return nil
	}

	s := CleanString(value)
	if s == nil {
		return nil
	}

	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil
	}

	return &n
}

// CleanWebsite trims a raw website value and prefixes https:// when
// the scheme is missing.
func CleanWebsite(value any) *string {
	s := CleanString(value)
	if s == nil {
		return nil
	}

	site := *s
	if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
		site = "https://" + site
	}

	return &site
}
