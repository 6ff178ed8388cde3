package duration

// unit is one of the five fixed duration units. The set is intentionally
// closed: the grammar recognizes exactly w, d, h, m, and s, and rank gives
// the strict ordering (week highest) used to validate input order.
type unit struct {
	symbol  byte
	name    string // singular, for human-readable output
	rank    int    // bigger rank = larger unit
	seconds int64
}

var (
	week   = unit{'w', "week", 5, 7 * 24 * 60 * 60}
	day    = unit{'d', "day", 4, 24 * 60 * 60}
	hour   = unit{'h', "hour", 3, 60 * 60}
	minute = unit{'m', "minute", 2, 60}
	second = unit{'s', "second", 1, 1}
)

// units holds every unit in descending rank order, which is also the
// canonical display order.
var units = [...]unit{week, day, hour, minute, second}

// unitFor maps a unit character to its unit. ok is false for characters
// outside the grammar.
func unitFor(c byte) (unit, bool) {
	for _, u := range units {
		if u.symbol == c {
			return u, true
		}
	}
	return unit{}, false
}
