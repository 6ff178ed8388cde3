package duration

import (
	"regexp"
	"strconv"
	"strings"
)

// token matches one <digits><unit> pair. Whitespace is permitted between
// tokens but never inside one, and only whole numbers are accepted, so
// decimal points and embedded signs surface as gap errors.
var token = regexp.MustCompile(`([0-9]+)([wdhms])`)

// Parse converts a human-readable duration string into a Duration.
//
// The grammar is a sequence of <digits><unit> tokens with the units in
// strictly descending order (w d h m s), each unit appearing at most once,
// optional whitespace between tokens, and an optional single leading '-'.
// Examples: "2h30m", "1w 2d 3h 4m 5s", "-90s".
//
// A leading '+' is not accepted. Values that exceed the int64 second range
// fail with an overflow message rather than wrapping around.
func Parse(s string) (Duration, error) {
	raw := s
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, invalidf(raw, "input is empty")
	}

	negative := false
	body := trimmed
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}
	if strings.TrimSpace(body) == "" {
		return 0, invalidf(raw, "empty duration after sign")
	}

	total, err := parseBody(body, raw)
	if err != nil {
		return 0, err
	}
	if negative {
		neg, ok := checkedNeg(total)
		if !ok {
			return 0, invalidf(raw, "duration is too large (overflow)")
		}
		total = neg
	}
	return Duration(total), nil
}

// parseBody scans the sign-stripped body left to right and accumulates the
// matched tokens into a non-negative total-second count. raw is the
// original input, echoed in every diagnostic.
func parseBody(body, raw string) (int64, error) {
	var total int64
	prevRank := 0 // no unit accepted yet; every real rank is higher
	cursor := 0
	count := 0

	for _, m := range token.FindAllStringSubmatchIndex(body, -1) {
		if err := checkGap(body[cursor:m[0]], raw); err != nil {
			return 0, err
		}

		digits := body[m[2]:m[3]]
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, invalidf(raw, "duration value is too large: %s", digits)
		}
		u, ok := unitFor(body[m[4]])
		if !ok {
			// Unreachable while the token pattern and the unit table agree.
			return 0, invalidf(raw, "invalid duration unit: %c", body[m[4]])
		}

		// A duplicate unit has equal rank, so one comparison enforces both
		// the descending order and the at-most-once rule.
		if prevRank != 0 && u.rank >= prevRank {
			if u.rank == prevRank {
				return 0, invalidf(raw, "duplicate unit: %c", u.symbol)
			}
			return 0, invalidf(raw, "units must be in descending order (w d h m s)")
		}

		seconds, ok := checkedMul(value, u.seconds)
		if !ok {
			return 0, invalidf(raw, "duration is too large (overflow)")
		}
		total, ok = checkedAdd(total, seconds)
		if !ok {
			return 0, invalidf(raw, "duration is too large (overflow)")
		}

		prevRank = u.rank
		cursor = m[1]
		count++
	}

	if count == 0 {
		return 0, invalidf(raw, "no duration tokens found")
	}
	// Trailing gap check, so "2h30mxx" is rejected.
	if err := checkGap(body[cursor:], raw); err != nil {
		return 0, err
	}
	return total, nil
}

// checkGap rejects any non-whitespace text between (or around) tokens.
func checkGap(gap, raw string) error {
	if strings.TrimSpace(gap) != "" {
		return invalidf(raw, "invalid characters between tokens: %q", gap)
	}
	return nil
}
