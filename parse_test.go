package duration

import (
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		// Single units
		{"seconds", "90s", 90, false},
		{"zero", "0s", 0, false},
		{"minutes", "2m", 120, false},
		{"hours", "2h", 7200, false},
		{"days", "1d", 86400, false},
		{"weeks", "1w", 604800, false},

		// Combined units
		{"hours and minutes", "2h30m", 9000, false},
		{"space between tokens", "2h 30m", 9000, false},
		{"three units", "1d 12h 45m", 132300, false},
		{"all five units", "1w 2d 3h 4m 5s", 788645, false},
		{"skipped unit", "1w5s", 604805, false},

		// Negative durations
		{"negative minutes", "-30m", -1800, false},
		{"negative combined", "-2h30m", -9000, false},
		{"negative with space", "-2h 30m", -9000, false},
		{"negative seconds", "-90s", -90, false},
		{"space after sign", "- 5s", -5, false},

		// Surrounding whitespace
		{"leading and trailing spaces", "  2h30m  ", 9000, false},

		// Extremes
		{"max int64 seconds", "9223372036854775807s", math.MaxInt64, false},
		{"min representable", "-9223372036854775807s", math.MinInt64 + 1, false},
		{"max int64 mixed", "15250284452471w3d15h30m7s", math.MaxInt64, false},

		// Error cases
		{"empty string", "", 0, true},
		{"blank string", "   ", 0, true},
		{"bare sign", "-", 0, true},
		{"sign then blank", "-   ", 0, true},
		{"double sign", "--2h", 0, true},
		{"leading plus", "+2h", 0, true},
		{"ascending order", "30m2h", 0, true},
		{"duplicate unit", "2h2h", 0, true},
		{"duplicate with gap", "1m 1m", 0, true},
		{"decimal value", "1.5h", 0, true},
		{"unknown unit", "2x", 0, true},
		{"underscores between tokens", "2h__30m", 0, true},
		{"comma between tokens", "2h,30m", 0, true},
		{"trailing garbage", "2h30m!", 0, true},
		{"unit without value", "h", 0, true},
		{"value without unit", "10", 0, true},
		{"space inside token", "2 h", 0, true},
		{"garbage between tokens", "2h xx 30m", 0, true},
		{"value exceeds int64", "9223372036854775808s", 0, true},
		{"huge week value", "9999999999999999999w", 0, true},
		{"multiply overflow", "152502844524715w", 0, true},
		{"accumulate overflow", "15250284452471w3d15h30m8s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !IsInvalidFormat(err) {
					t.Errorf("Parse(%q) error = %v, want InvalidFormatError", tt.input, err)
				}
				return
			}
			if got.Seconds() != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got.Seconds(), tt.want)
			}
		})
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"ascending order", "30m2h", "descending"},
		{"duplicate unit", "2h2h", "duplicate"},
		{"no tokens", "abc", "no duration tokens"},
		{"gap text reported", "2h xx 30m", `" xx "`},
		{"empty input", "", "empty"},
		{"overflow", "9999999999999999999w", "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.contains)) {
				t.Errorf("Parse(%q) error = %q, want it to mention %q", tt.input, err, tt.contains)
			}
		})
	}
}

// Every diagnostic echoes the raw input for diagnosability.
func TestParseErrorsEchoInput(t *testing.T) {
	for _, input := range []string{"30m2h", "2h2h", "1.5h", "+2h", "9999999999999999999w"} {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) expected error, got nil", input)
		}
		if !strings.Contains(err.Error(), input) {
			t.Errorf("Parse(%q) error = %q, want it to echo the input", input, err)
		}
	}
}
