package duration

import "math"

// Add returns d + other, failing with an InvalidFormatError when the sum
// does not fit in the int64 second range. Neither operand is modified.
func (d Duration) Add(other Duration) (Duration, error) {
	sum, ok := checkedAdd(int64(d), int64(other))
	if !ok {
		return 0, invalidf("", "duration arithmetic overflow (add)")
	}
	return Duration(sum), nil
}

// Sub returns d - other, overflow-checked like Add.
func (d Duration) Sub(other Duration) (Duration, error) {
	diff, ok := checkedSub(int64(d), int64(other))
	if !ok {
		return 0, invalidf("", "duration arithmetic overflow (subtract)")
	}
	return Duration(diff), nil
}

// Go has no equivalent of Java's Math.addExact, so the checked helpers
// below detect overflow explicitly and report it through their second
// return value instead of wrapping around.

func checkedAdd(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// math.MinInt64 / -1 is itself an overflowing division, so rule the
	// pair out before the quotient check.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func checkedNeg(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return -v, true
}
