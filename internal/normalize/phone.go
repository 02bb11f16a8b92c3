package normalize

import (
	"fmt"
	"regexp"
)

// minPhoneDigits is the floor below which a digit string is too short
// to be worth keeping even unformatted.
const minPhoneDigits = 7

var nonDigit = regexp.MustCompile(`\D`)

// ParsePhone strips non-digit characters and formats North American
// numbers: 10 digits as (XXX) XXX-XXXX, 11 digits with a leading
// country code as 1-(XXX) XXX-XXXX. Other digit strings of at least
// minPhoneDigits are returned as-is. This is a best-effort formatter,
// not a validator: malformed numbers pass through unformatted rather
// than being rejected.
func ParsePhone(value any) *string {
	s := CleanString(value)
	if s == nil {
		return nil
	}

	digits := nonDigit.ReplaceAllString(*s, "")

	switch {
	case len(digits) == 10:
		formatted := fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])

		return &formatted
	case len(digits) == 11 && digits[0] == '1':
		formatted := fmt.Sprintf("1-(%s) %s-%s", digits[1:4], digits[4:7], digits[7:])

		return &formatted
	case len(digits) >= minPhoneDigits:
		return &digits
	}

	return nil
}
