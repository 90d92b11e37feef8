package grid

import "trimly/models"

// Default axis when a day has no resources, so an empty schedule still
// renders a 9:00 AM - 7:30 PM frame.
const (
	DefaultRangeStart = 9 * 60
	DefaultRangeEnd   = 19*60 + 30
	DefaultSlotSize   = 30
)

// BuildSlotGrid computes the time axis for a day: the union of the resources'
// working hours, quantized into slotSize-minute rows. RangeEnd gets one extra
// slot so the last working slot has a rendered row instead of being clipped
// at the boundary.
func BuildSlotGrid(resources []models.Resource, slotSize int) models.SlotGrid {
	if slotSize <= 0 {
		slotSize = DefaultSlotSize
	}

	rangeStart, rangeEnd := 0, 0
	first := true
	for _, r := range resources {
		if r.WorkEnd <= r.WorkStart {
			continue
		}
		if first || r.WorkStart < rangeStart {
			rangeStart = r.WorkStart
		}
		if first || r.WorkEnd > rangeEnd {
			rangeEnd = r.WorkEnd
		}
		first = false
	}
	if first {
		rangeStart, rangeEnd = DefaultRangeStart, DefaultRangeEnd
	}
	rangeEnd += slotSize

	// A slot is emitted only when the whole row fits before rangeEnd: the
	// last emitted slot starts one slotSize before the latest workEnd.
	slots := make([]int, 0, (rangeEnd-rangeStart)/slotSize)
	for t := rangeStart; t+slotSize < rangeEnd; t += slotSize {
		slots = append(slots, t)
	}

	return models.SlotGrid{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		SlotSize:   slotSize,
		Slots:      slots,
	}
}

// RowIndex maps a time point onto the grid's row index space.
func RowIndex(g models.SlotGrid, t int) int {
	return (t - g.RangeStart) / g.SlotSize
}
