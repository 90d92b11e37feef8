package grid

import (
	"fmt"
	"sort"

	"trimly/models"
)

// MergeTimeOff collapses a resource's raw time-off blocks into per-date
// summaries. Blocks that overlap or touch (next start <= current end) become
// one interval; totals count the union of covered minutes, so fully contained
// duplicates add nothing. Output is ordered by date, then by interval start.
func MergeTimeOff(blocks []models.TimeOffBlock) []models.MergedTimeOffSummary {
	type key struct {
		resourceID string
		date       string
	}
	byDay := make(map[key][]models.TimeOffBlock)
	for _, b := range blocks {
		if b.End <= b.Start {
			continue // inverted or zero-length, nothing to display
		}
		k := key{b.ResourceID, b.Date}
		byDay[k] = append(byDay[k], b)
	}

	summaries := make([]models.MergedTimeOffSummary, 0, len(byDay))
	for k, day := range byDay {
		sort.Slice(day, func(i, j int) bool { return day[i].Start < day[j].Start })

		var merged []models.MergedInterval
		current := models.MergedInterval{Start: day[0].Start, End: day[0].End}
		for _, b := range day[1:] {
			if b.Start <= current.End {
				if b.End > current.End {
					current.End = b.End
				}
				continue
			}
			merged = append(merged, current)
			current = models.MergedInterval{Start: b.Start, End: b.End}
		}
		merged = append(merged, current)

		total := 0
		for i := range merged {
			merged[i].Label = fmt.Sprintf("%s - %s", ClockLabel(merged[i].Start), ClockLabel(merged[i].End))
			total += merged[i].End - merged[i].Start
		}

		summaries = append(summaries, models.MergedTimeOffSummary{
			ResourceID:   k.resourceID,
			Date:         k.date,
			Intervals:    merged,
			TotalMinutes: total,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date == summaries[j].Date {
			return summaries[i].ResourceID < summaries[j].ResourceID
		}
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}
