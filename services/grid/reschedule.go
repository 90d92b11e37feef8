package grid

import (
	"github.com/google/uuid"

	"trimly/models"
)

// DragPhase is the lifecycle of one drag gesture. The state lives only for
// the duration of the interaction and is carried as a value through the
// transition functions, never as ambient mutable fields.
type DragPhase string

const (
	PhaseIdle      DragPhase = "idle"
	PhaseDragging  DragPhase = "dragging"
	PhaseCandidate DragPhase = "candidate"
)

// GridInteractionState is the complete interaction state of the grid.
type GridInteractionState struct {
	Phase       DragPhase
	BookingID   string
	Duration    int // minutes, captured at drag start
	CandidateID string
	Candidate   int // slot start, valid only in PhaseCandidate
}

// IdleState is the state before and after every gesture.
func IdleState() GridInteractionState {
	return GridInteractionState{Phase: PhaseIdle}
}

// BeginDrag starts a gesture on a booking. Bookings under an inactive
// resource are read-only, so the gesture is refused and the state stays idle.
func BeginDrag(state GridInteractionState, snapshot models.DaySchedule, bookingID string) (GridInteractionState, error) {
	if state.Phase != PhaseIdle {
		return state, nil
	}

	var booking *models.Booking
	for i := range snapshot.Bookings {
		if snapshot.Bookings[i].ID == bookingID {
			booking = &snapshot.Bookings[i]
			break
		}
	}
	if booking == nil {
		return IdleState(), newRescheduleError(codeNotDraggable, "booking not found in the current schedule")
	}

	origin := findResource(snapshot.Resources, booking.ResourceID)
	if origin == nil || !origin.Active {
		return IdleState(), newRescheduleError(codeInactiveResource, "this staff member's schedule is read-only")
	}

	return GridInteractionState{
		Phase:     PhaseDragging,
		BookingID: bookingID,
		Duration:  booking.Duration(),
	}, nil
}

// DragOver updates the candidate cell while the pointer moves. A cell only
// becomes a candidate when its resource is active and the cell itself is
// droppable: in working hours, not blocked by time off, not occupied by
// another booking. Moving over anything else falls back to plain dragging.
func DragOver(state GridInteractionState, snapshot models.DaySchedule, resourceID string, slot int) GridInteractionState {
	if state.Phase != PhaseDragging && state.Phase != PhaseCandidate {
		return state
	}

	next := state
	next.Phase = PhaseDragging
	next.CandidateID = ""
	next.Candidate = 0

	target := findResource(snapshot.Resources, resourceID)
	if target == nil || !target.Active {
		return next
	}
	if slot < target.WorkStart || slot >= target.WorkEnd {
		return next
	}
	if slotBlocked(timeOffFor(snapshot, resourceID), resourceID, slot) {
		return next
	}
	if slotOccupied(otherBookings(snapshot.Bookings, state.BookingID), resourceID, slot) {
		return next
	}

	next.Phase = PhaseCandidate
	next.CandidateID = resourceID
	next.Candidate = slot
	return next
}

// Drop commits the gesture. On success it emits the reschedule command for
// the schedule service to execute; the grid itself never moves the booking;
// it waits for the refreshed snapshot. On rejection the schedule is untouched
// and the state returns to idle.
func Drop(state GridInteractionState, snapshot models.DaySchedule) (GridInteractionState, *models.RescheduleCommand, error) {
	if state.Phase != PhaseCandidate {
		return IdleState(), nil, newRescheduleError(codeNoCandidate, "no valid drop target under the pointer")
	}

	target := findResource(snapshot.Resources, state.CandidateID)
	if target == nil || !target.Active {
		return IdleState(), nil, newRescheduleError(codeInactiveResource, "this staff member's schedule is read-only")
	}

	newStart := state.Candidate
	newEnd := newStart + state.Duration
	if newStart < target.WorkStart || newEnd > target.WorkEnd {
		return IdleState(), nil, newRescheduleError(codeOutOfHours,
			"the appointment would run outside "+target.Name+"'s working hours ("+
				ClockLabel(target.WorkStart)+" - "+ClockLabel(target.WorkEnd)+")")
	}

	cmd := &models.RescheduleCommand{
		CommandID:        uuid.New().String(),
		BookingID:        state.BookingID,
		TargetResourceID: target.ID,
		NewStart:         newStart,
	}
	return IdleState(), cmd, nil
}

// CancelDrag ends the gesture with no command, e.g. releasing outside the grid.
func CancelDrag(GridInteractionState) GridInteractionState {
	return IdleState()
}

func findResource(resources []models.Resource, id string) *models.Resource {
	for i := range resources {
		if resources[i].ID == id {
			return &resources[i]
		}
	}
	return nil
}

// otherBookings excludes the dragged booking itself so moving within the same
// column doesn't collide with its own old position.
func otherBookings(bookings []models.Booking, draggedID string) []models.Booking {
	others := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != draggedID {
			others = append(others, b)
		}
	}
	return others
}

func timeOffFor(snapshot models.DaySchedule, resourceID string) []models.TimeOffBlock {
	blocks := make([]models.TimeOffBlock, 0, len(snapshot.TimeOff))
	for _, t := range snapshot.TimeOff {
		if t.ResourceID == resourceID {
			blocks = append(blocks, t)
		}
	}
	return blocks
}
