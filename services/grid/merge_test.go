package grid

import (
	"reflect"
	"testing"

	"trimly/models"
)

func block(resourceID, date string, start, end int) models.TimeOffBlock {
	return models.TimeOffBlock{ResourceID: resourceID, Date: date, Start: start, End: end}
}

func TestMergeTimeOffOverlapping(t *testing.T) {
	// 10:00-11:00 and 10:30-12:00 collapse into 10:00-12:00, 120 minutes.
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-08-31", 600, 660),
		block("r1", "2026-08-31", 630, 720),
	})
	if len(out) != 1 {
		t.Fatalf("want 1 summary, got %d", len(out))
	}
	s := out[0]
	if len(s.Intervals) != 1 || s.Intervals[0].Start != 600 || s.Intervals[0].End != 720 {
		t.Fatalf("unexpected intervals: %+v", s.Intervals)
	}
	if s.TotalMinutes != 120 {
		t.Errorf("total = %d, want 120", s.TotalMinutes)
	}
	if s.Intervals[0].Label != "10:00 AM - 12:00 PM" {
		t.Errorf("label = %q", s.Intervals[0].Label)
	}
}

func TestMergeTimeOffTouching(t *testing.T) {
	// Adjacent blocks (start == previous end) merge; no gap is displayed.
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-08-31", 540, 600),
		block("r1", "2026-08-31", 600, 660),
	})
	if len(out) != 1 || len(out[0].Intervals) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out[0].Intervals[0].Start != 540 || out[0].Intervals[0].End != 660 {
		t.Errorf("merged interval = %+v", out[0].Intervals[0])
	}
}

func TestMergeTimeOffContained(t *testing.T) {
	// A fully contained block collapses without affecting the total.
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-08-31", 540, 720),
		block("r1", "2026-08-31", 570, 600),
	})
	if out[0].TotalMinutes != 180 {
		t.Errorf("total = %d, want 180", out[0].TotalMinutes)
	}
	if len(out[0].Intervals) != 1 {
		t.Errorf("intervals = %+v", out[0].Intervals)
	}
}

func TestMergeTimeOffDisjoint(t *testing.T) {
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-08-31", 720, 780),
		block("r1", "2026-08-31", 540, 600),
	})
	s := out[0]
	if len(s.Intervals) != 2 {
		t.Fatalf("want 2 intervals, got %+v", s.Intervals)
	}
	// Sorted by start regardless of input order.
	if s.Intervals[0].Start != 540 || s.Intervals[1].Start != 720 {
		t.Errorf("order wrong: %+v", s.Intervals)
	}
	if s.TotalMinutes != 120 {
		t.Errorf("total = %d, want 120", s.TotalMinutes)
	}
}

func TestMergeTimeOffIdempotent(t *testing.T) {
	in := []models.TimeOffBlock{
		block("r1", "2026-08-31", 540, 630),
		block("r1", "2026-08-31", 600, 720),
		block("r1", "2026-08-31", 800, 860),
	}
	first := MergeTimeOff(in)

	// Feed the merged intervals back in as blocks.
	var again []models.TimeOffBlock
	for _, s := range first {
		for _, iv := range s.Intervals {
			again = append(again, block(s.ResourceID, s.Date, iv.Start, iv.End))
		}
	}
	second := MergeTimeOff(again)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("merge not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestMergeTimeOffGroupsByDate(t *testing.T) {
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-09-01", 540, 600),
		block("r1", "2026-08-31", 540, 600),
		block("r1", "2026-08-31", 560, 640),
	})
	if len(out) != 2 {
		t.Fatalf("want 2 summaries, got %d", len(out))
	}
	if out[0].Date != "2026-08-31" || out[1].Date != "2026-09-01" {
		t.Errorf("dates out of order: %s, %s", out[0].Date, out[1].Date)
	}
	if out[0].TotalMinutes != 100 {
		t.Errorf("day one total = %d, want 100", out[0].TotalMinutes)
	}
}

func TestMergeTimeOffDegenerate(t *testing.T) {
	if out := MergeTimeOff(nil); len(out) != 0 {
		t.Errorf("nil input: %+v", out)
	}
	// Inverted and zero-length blocks are ignored.
	out := MergeTimeOff([]models.TimeOffBlock{
		block("r1", "2026-08-31", 600, 600),
		block("r1", "2026-08-31", 700, 650),
	})
	if len(out) != 0 {
		t.Errorf("degenerate blocks produced output: %+v", out)
	}
}
