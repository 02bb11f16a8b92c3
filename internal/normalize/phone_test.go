package normalize

import (
	"testing"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		nil_  bool
	}{
		{name: "Ten digits with dashes", value: "403-555-1234", want: "(403) 555-1234"},
		{name: "Ten digits bare", value: "4035551234", want: "(403) 555-1234"},
		{name: "Eleven digits with country code", value: "14035551234", want: "1-(403) 555-1234"},
		{name: "Formatted input", value: "(403) 555-1234", want: "(403) 555-1234"},
		{name: "Seven digits kept raw", value: "555-1234", want: "5551234"},
		{name: "Too short", value: "555-12", nil_: true},
		{name: "No digits", value: "abc", nil_: true},
		{name: "Nil", value: nil, nil_: true},
		{name: "Numeric cell", value: float64(4035551234), want: "(403) 555-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePhone(tt.value)

			if tt.nil_ {
				if got != nil {
					t.Errorf("ParsePhone(%v) = %q, want nil", tt.value, *got)
				}

				return
			}

			if got == nil {
				t.Fatalf("ParsePhone(%v) = nil, want %q", tt.value, tt.want)
			}

			if *got != tt.want {
				t.Errorf("ParsePhone(%v) = %q, want %q", tt.value, *got, tt.want)
			}
		})
	}
}
