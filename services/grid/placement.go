package grid

import (
	"trimly/models"

	"go.uber.org/zap"
)

// covers reports whether the half-open interval [start, end) contains slot.
func covers(start, end, slot int) bool {
	return start <= slot && slot < end
}

// slotOccupied is the single occupancy predicate shared by cell resolution
// and drop validation. The reschedule validator relies on it: a droppable
// cell exists only where this returns false, which is what makes the
// no-double-booking guarantee hold without a second check at drop time.
func slotOccupied(bookings []models.Booking, resourceID string, slot int) bool {
	for _, b := range bookings {
		if b.ResourceID == resourceID && b.Status != models.BookingStatusCancelled && covers(b.Start, b.End, slot) {
			return true
		}
	}
	return false
}

func slotBlocked(timeOff []models.TimeOffBlock, resourceID string, slot int) bool {
	for _, t := range timeOff {
		if t.ResourceID == resourceID && covers(t.Start, t.End, slot) {
			return true
		}
	}
	return false
}

// ResolvePlacements maps each booking onto its column's rows. Bookings keep
// exact minute boundaries; only the row math quantizes. A booking shorter
// than one slot still spans a full row. Bookings pointing at a resource not
// in the snapshot are stale data, dropped with a warning rather than a crash.
// A non-empty styleFilter dims non-matching bookings; it never hides them.
func ResolvePlacements(g models.SlotGrid, resources []models.Resource, bookings []models.Booking, styleFilter string, logger *zap.Logger) []models.BookingPlacement {
	known := make(map[string]bool, len(resources))
	for _, r := range resources {
		known[r.ID] = true
	}

	placements := make([]models.BookingPlacement, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if !known[b.ResourceID] {
			logger.Warn("dropping orphaned booking",
				zap.String("bookingId", b.ID), zap.String("resourceId", b.ResourceID))
			continue
		}

		rowSpan := (b.Duration() + g.SlotSize - 1) / g.SlotSize
		if rowSpan < 1 {
			rowSpan = 1
		}
		placements = append(placements, models.BookingPlacement{
			Booking:  b,
			RowStart: RowIndex(g, b.Start),
			RowSpan:  rowSpan,
			Dimmed:   !MatchesStyleFilter(b.StyleNote, styleFilter),
		})
	}
	return placements
}

// ResolveCells classifies every (resource, slot) cell. Priority order:
// time off beats bookings beats working hours. A booking overlapping a
// time-off block still shows the cell as blocked.
func ResolveCells(g models.SlotGrid, resources []models.Resource, bookings []models.Booking, timeOff []models.TimeOffBlock) []models.Cell {
	cells := make([]models.Cell, 0, len(resources)*len(g.Slots))
	for _, r := range resources {
		for _, slot := range g.Slots {
			state := models.CellOutOfHours
			switch {
			case slotBlocked(timeOff, r.ID, slot):
				state = models.CellBlocked
			case slotOccupied(bookings, r.ID, slot):
				state = models.CellOccupied
			case covers(r.WorkStart, r.WorkEnd, slot):
				state = models.CellAvailable
			}
			cells = append(cells, models.Cell{ResourceID: r.ID, Slot: slot, State: state})
		}
	}
	return cells
}
