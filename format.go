package duration

import (
	"strconv"
	"strings"
)

// Format renders the duration in compact canonical form: every non-zero
// unit as <magnitude><unit letter> in descending order with no separators,
// prefixed with '-' when negative. Zero-valued units are omitted, so 3600
// seconds renders as "1h", not "1h0m0s". Zero renders as "0s".
//
// Format fails only for the one value Normalize rejects.
func (d Duration) Format() (string, error) {
	p, err := d.Normalize()
	if err != nil {
		return "", err
	}
	if p.IsZero() {
		return "0s", nil
	}

	var b strings.Builder
	if p.Negative() {
		b.WriteByte('-')
	}
	for _, m := range p.magnitudes() {
		if m.value == 0 {
			continue
		}
		b.WriteString(strconv.FormatInt(m.value, 10))
		b.WriteByte(m.unit.symbol)
	}
	return b.String(), nil
}

// Humanize renders the duration as pluralized English words, e.g.
// "2 hours 30 minutes" or "-1 minute 30 seconds". Zero-valued units are
// omitted and zero renders as "0 seconds".
func (d Duration) Humanize() (string, error) {
	p, err := d.Normalize()
	if err != nil {
		return "", err
	}
	if p.IsZero() {
		return "0 seconds", nil
	}

	parts := make([]string, 0, len(units))
	for _, m := range p.magnitudes() {
		if m.value == 0 {
			continue
		}
		name := m.unit.name
		if m.value != 1 {
			name += "s"
		}
		parts = append(parts, strconv.FormatInt(m.value, 10)+" "+name)
	}

	joined := strings.Join(parts, " ")
	if p.Negative() {
		return "-" + joined, nil
	}
	return joined, nil
}

type magnitude struct {
	value int64
	unit  unit
}

// magnitudes pairs each magnitude with its unit in canonical display
// order, the shared basis for both output styles.
func (p Parts) magnitudes() []magnitude {
	return []magnitude{
		{p.Weeks, week},
		{p.Days, day},
		{p.Hours, hour},
		{p.Minutes, minute},
		{p.Seconds, second},
	}
}
