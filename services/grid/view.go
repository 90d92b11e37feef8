package grid

import (
	"trimly/models"

	"go.uber.org/zap"
)

// ViewOptions tunes a day-view computation.
type ViewOptions struct {
	SlotSize    int    // minutes per row; 0 means DefaultSlotSize
	StyleFilter string // dims bookings whose style note doesn't match
}

// BuildDayView runs the whole pipeline over one day's snapshot: axis, booking
// placements, cell states and merged time-off summaries. It is a pure
// function of its inputs and is recomputed in full on every call; nothing
// here caches or mutates.
func BuildDayView(snapshot models.DaySchedule, opts ViewOptions, logger *zap.Logger) models.DayView {
	g := BuildSlotGrid(snapshot.Resources, opts.SlotSize)
	return models.DayView{
		Date:       snapshot.Date,
		Grid:       g,
		Resources:  snapshot.Resources,
		Placements: ResolvePlacements(g, snapshot.Resources, snapshot.Bookings, opts.StyleFilter, logger),
		Cells:      ResolveCells(g, snapshot.Resources, snapshot.Bookings, snapshot.TimeOff),
		TimeOff:    MergeTimeOff(snapshot.TimeOff),
	}
}
