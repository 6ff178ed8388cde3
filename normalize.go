package duration

// Parts is the bounded per-unit breakdown of a Duration. Weeks is the only
// unbounded magnitude; Days is 0-6, Hours 0-23, Minutes and Seconds 0-59.
// Sign is +1 or -1 and applies to the breakdown as a whole, so
//
//	Sign * (Weeks*604800 + Days*86400 + Hours*3600 + Minutes*60 + Seconds)
//
// reproduces the original second count exactly.
type Parts struct {
	Sign    int
	Weeks   int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// IsZero reports whether every magnitude is zero.
func (p Parts) IsZero() bool {
	return p.Weeks == 0 && p.Days == 0 && p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0
}

// Negative reports whether the breakdown describes a negative duration.
func (p Parts) Negative() bool {
	return p.Sign < 0
}

// Normalize breaks the duration down into bounded per-unit magnitudes.
// Zero yields the canonical zero breakdown (Sign=+1, all magnitudes 0).
//
// The one unrepresentable value is math.MinInt64 seconds, whose absolute
// value does not fit in an int64; normalizing it fails with an
// InvalidFormatError instead of producing a wrong breakdown.
func (d Duration) Normalize() (Parts, error) {
	total := int64(d)
	if total == 0 {
		return Parts{Sign: 1}, nil
	}

	sign := 1
	if total < 0 {
		sign = -1
		abs, ok := checkedNeg(total)
		if !ok {
			return Parts{}, invalidf("", "duration is too large to normalize (overflow)")
		}
		total = abs
	}

	p := Parts{Sign: sign}
	p.Weeks = total / week.seconds
	total %= week.seconds
	p.Days = total / day.seconds
	total %= day.seconds
	p.Hours = total / hour.seconds
	total %= hour.seconds
	p.Minutes = total / minute.seconds
	p.Seconds = total % minute.seconds
	return p, nil
}
