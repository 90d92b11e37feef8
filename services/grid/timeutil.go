package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every TimePoint: valid values are [0, 1440).
const MinutesPerDay = 24 * 60

// ErrInvalidClock reports a clock string that could not be parsed.
var ErrInvalidClock = fmt.Errorf("invalid clock string")

// ParseClock parses "HH:MM" (24-hour) or "h:mm am/pm" (case-insensitive,
// optional space before the meridiem) into minutes from midnight.
func ParseClock(s string) (int, error) {
	text := strings.TrimSpace(strings.ToLower(s))
	if text == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidClock)
	}

	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(text, suffix) {
			meridiem = suffix
			text = strings.TrimSpace(strings.TrimSuffix(text, suffix))
			break
		}
	}

	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}

	return hour*60 + minute, nil
}

// ParseClockOrZero is the legacy fallback used by display-formatting paths:
// an unparseable string renders as midnight instead of breaking the view.
// New code should call ParseClock and handle the error.
func ParseClockOrZero(s string) int {
	t, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return t
}

// ClockValue renders minutes from midnight as a zero-padded 24-hour "HH:MM",
// the form used in payloads and stored records.
func ClockValue(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockLabel renders minutes from midnight for humans: "h:mm AM/PM", with
// noon and midnight shown as 12, never 0.
func ClockLabel(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// FormatDuration renders a minute count as "XhYm", dropping a zero unit:
// 90 -> "1h30m", 120 -> "2h", 45 -> "45m", 0 -> "0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh%dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
