package grid

import "strings"

// MatchesStyleFilter reports whether a booking's style note matches the
// console's filter box: case-insensitive substring, empty filter matches
// everything. The filter is advisory: callers dim non-matching bookings
// instead of hiding them.
func MatchesStyleFilter(note, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(note), strings.ToLower(filter))
}
