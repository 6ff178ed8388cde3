// Package duration parses, formats, and does exact arithmetic on
// human-readable durations such as "2h30m", "1w 2d 3h 4m 5s", or "-90s".
//
// A Duration is a signed count of whole seconds. Five fixed units are
// supported — w (weeks), d (days), h (hours), m (minutes), s (seconds) —
// each a constant multiple of seconds. There are no calendar-aware units
// (months, years) and no sub-second precision.
//
// Every operation is a pure function over its inputs: values are immutable,
// results are deterministic, and any number of goroutines may use the same
// values concurrently without coordination.
package duration

// Duration is a signed number of whole seconds. The zero value is a zero
// duration. Durations order and test equal by their second count, so ==,
// <, and > behave as expected.
//
// The full int64 range is representable, with one reserved exception:
// math.MinInt64 seconds cannot be normalized or formatted because its
// absolute value overflows (see Normalize).
type Duration int64

// FromMilliseconds converts a millisecond count to a Duration. Sub-second
// precision is not representable, so ms must be an exact multiple of 1000.
func FromMilliseconds(ms int64) (Duration, error) {
	if ms%1000 != 0 {
		return 0, invalidf("", "milliseconds must be a multiple of 1000 (no fractional seconds)")
	}
	return Duration(ms / 1000), nil
}

// FromSeconds converts a second count to a Duration.
func FromSeconds(s int64) Duration {
	return Duration(s)
}

// FromMinutes converts a minute count to a Duration, failing when the
// equivalent second count overflows.
func FromMinutes(m int64) (Duration, error) {
	return fromUnit(m, minute)
}

// FromHours converts an hour count to a Duration, overflow-checked.
func FromHours(h int64) (Duration, error) {
	return fromUnit(h, hour)
}

// FromDays converts a day count to a Duration, overflow-checked.
func FromDays(d int64) (Duration, error) {
	return fromUnit(d, day)
}

// FromWeeks converts a week count to a Duration, overflow-checked.
func FromWeeks(w int64) (Duration, error) {
	return fromUnit(w, week)
}

func fromUnit(value int64, u unit) (Duration, error) {
	seconds, ok := checkedMul(value, u.seconds)
	if !ok {
		return 0, invalidf("", "duration is too large (overflow)")
	}
	return Duration(seconds), nil
}

// Milliseconds returns the total number of milliseconds, failing when the
// conversion overflows the int64 range.
func (d Duration) Milliseconds() (int64, error) {
	ms, ok := checkedMul(int64(d), 1000)
	if !ok {
		return 0, invalidf("", "duration is too large in milliseconds (overflow)")
	}
	return ms, nil
}

// Seconds returns the total number of seconds.
func (d Duration) Seconds() int64 {
	return int64(d)
}

// Minutes returns the total number of whole minutes, truncated toward zero.
func (d Duration) Minutes() int64 {
	return int64(d) / minute.seconds
}

// Hours returns the total number of whole hours, truncated toward zero.
func (d Duration) Hours() int64 {
	return int64(d) / hour.seconds
}

// Days returns the total number of whole days, truncated toward zero.
func (d Duration) Days() int64 {
	return int64(d) / day.seconds
}

// Weeks returns the total number of whole weeks, truncated toward zero.
func (d Duration) Weeks() int64 {
	return int64(d) / week.seconds
}

// Compare orders d against other, returning -1 when d is shorter, +1 when
// it is longer, and 0 when they are equal.
func (d Duration) Compare(other Duration) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	}
	return 0
}

// String implements fmt.Stringer using the compact form, e.g. "2h30m".
// The one value that cannot be formatted (math.MinInt64 seconds) yields
// the fixed marker "%!(OVERFLOW)"; use Format to observe the error.
func (d Duration) String() string {
	s, err := d.Format()
	if err != nil {
		return "%!(OVERFLOW)"
	}
	return s
}
