package grid

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00", 540},
		{"00:00", 0},
		{"23:59", 1439},
		{"9:05 am", 545},
		{"9:05AM", 545},
		{"12:00 pm", 720},
		{"12:00 am", 0},
		{"12:30am", 30},
		{"5:15 PM", 1035},
		{" 17:00 ", 1020},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "25:00", "9:60", "13:00 pm", "0:30 am", "930", "9.30"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q): want ErrInvalidClock, got %v", in, err)
		}
	}
}

func TestParseClockOrZero(t *testing.T) {
	if got := ParseClockOrZero("not a time"); got != 0 {
		t.Errorf("ParseClockOrZero fallback = %d, want 0", got)
	}
	if got := ParseClockOrZero("10:30"); got != 630 {
		t.Errorf("ParseClockOrZero(10:30) = %d, want 630", got)
	}
}

func TestClockValue(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{1439, "23:59"},
	}
	for _, tc := range cases {
		if got := ClockValue(tc.in); got != tc.want {
			t.Errorf("ClockValue(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClockLabel(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},   // midnight shows as 12, never 0
		{720, "12:00 PM"}, // noon likewise
		{545, "9:05 AM"},
		{1035, "5:15 PM"},
		{1439, "11:59 PM"},
	}
	for _, tc := range cases {
		if got := ClockLabel(tc.in); got != tc.want {
			t.Errorf("ClockLabel(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Parsing then relabeling lands on the same clock position for both notations.
func TestClockRoundTrip(t *testing.T) {
	for _, in := range []string{"00:00", "09:30", "12:00", "12:30", "23:59", "12:00 am", "12:00 pm", "9:05 pm"} {
		mins, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", in, err)
		}
		back, err := ParseClock(ClockLabel(mins))
		if err != nil {
			t.Fatalf("ParseClock(ClockLabel(%d)): %v", mins, err)
		}
		if back != mins {
			t.Errorf("round trip for %q: %d -> %d", in, mins, back)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{150, "2h30m"},
		{120, "2h"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
