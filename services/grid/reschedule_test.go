package grid

import (
	"errors"
	"testing"

	"trimly/models"
)

func daySnapshot() models.DaySchedule {
	return models.DaySchedule{
		BusinessID: "biz1",
		Date:       "2026-08-31",
		Resources: []models.Resource{
			staff("anna", 540, 1020, true),  // 9:00-17:00
			staff("bea", 600, 1080, true),   // 10:00-18:00
			staff("carl", 540, 1020, false), // inactive, read-only
		},
		Bookings: []models.Booking{
			appt("b1", "anna", 600, 660),
			appt("b2", "bea", 720, 780),
			appt("b3", "carl", 600, 660),
		},
		TimeOff: []models.TimeOffBlock{
			block("bea", "2026-08-31", 900, 960), // 15:00-16:00
		},
	}
}

func rescheduleCode(t *testing.T, err error) string {
	t.Helper()
	var rejection *RescheduleError
	if !errors.As(err, &rejection) {
		t.Fatalf("want RescheduleError, got %v", err)
	}
	return rejection.Code
}

func TestBeginDrag(t *testing.T) {
	snap := daySnapshot()

	state, err := BeginDrag(IdleState(), snap, "b1")
	if err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if state.Phase != PhaseDragging || state.BookingID != "b1" || state.Duration != 60 {
		t.Errorf("unexpected state: %+v", state)
	}
}

func TestBeginDragInactiveOrigin(t *testing.T) {
	snap := daySnapshot()

	state, err := BeginDrag(IdleState(), snap, "b3")
	if code := rescheduleCode(t, err); code != codeInactiveResource {
		t.Errorf("code = %s, want %s", code, codeInactiveResource)
	}
	if state.Phase != PhaseIdle {
		t.Errorf("state not idle after refusal: %+v", state)
	}
}

func TestBeginDragUnknownBooking(t *testing.T) {
	if _, err := BeginDrag(IdleState(), daySnapshot(), "ghost"); err == nil {
		t.Fatal("expected error for unknown booking")
	}
}

func TestDragOverCandidates(t *testing.T) {
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")

	cases := []struct {
		name       string
		resourceID string
		slot       int
		candidate  bool
	}{
		{"free in-hours cell", "anna", 780, true},
		{"inactive destination", "carl", 780, false},
		{"before working hours", "bea", 540, false},
		{"at workEnd boundary", "anna", 1020, false},
		{"blocked by time off", "bea", 900, false},
		{"occupied by other booking", "bea", 720, false},
		{"own old position is free", "anna", 600, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := DragOver(state, snap, tc.resourceID, tc.slot)
			if got := next.Phase == PhaseCandidate; got != tc.candidate {
				t.Errorf("candidate = %v, want %v (state %+v)", got, tc.candidate, next)
			}
			if tc.candidate && (next.CandidateID != tc.resourceID || next.Candidate != tc.slot) {
				t.Errorf("candidate cell = (%s, %d)", next.CandidateID, next.Candidate)
			}
		})
	}
}

func TestDragOverLeavingCandidateFallsBack(t *testing.T) {
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")

	state = DragOver(state, snap, "anna", 780)
	if state.Phase != PhaseCandidate {
		t.Fatalf("setup failed: %+v", state)
	}
	state = DragOver(state, snap, "carl", 780)
	if state.Phase != PhaseDragging || state.CandidateID != "" {
		t.Errorf("stale candidate kept: %+v", state)
	}
}

func TestDropRejectsOutOfHoursEnd(t *testing.T) {
	// 60-minute booking dropped on the last in-hours slot: 990+60 = 1050
	// runs past anna's 17:00 end, so the move is refused.
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")
	state = DragOver(state, snap, "anna", 990)
	if state.Phase != PhaseCandidate {
		t.Fatalf("990 should be a candidate cell: %+v", state)
	}

	state, cmd, err := Drop(state, snap)
	if cmd != nil {
		t.Fatalf("command emitted on rejection: %+v", cmd)
	}
	if code := rescheduleCode(t, err); code != codeOutOfHours {
		t.Errorf("code = %s, want %s", code, codeOutOfHours)
	}
	if state.Phase != PhaseIdle {
		t.Errorf("state not reset: %+v", state)
	}
}

func TestDropAcceptsExactBoundaryEnd(t *testing.T) {
	// 960+60 = 1020 == workEnd: ending exactly at the boundary is legal.
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")
	state = DragOver(state, snap, "anna", 960)

	state, cmd, err := Drop(state, snap)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if cmd == nil {
		t.Fatal("no command emitted")
	}
	if cmd.BookingID != "b1" || cmd.TargetResourceID != "anna" || cmd.NewStart != 960 {
		t.Errorf("command = %+v", cmd)
	}
	if cmd.CommandID == "" {
		t.Error("command missing idempotency key")
	}
	if state.Phase != PhaseIdle {
		t.Errorf("state not reset after commit: %+v", state)
	}
}

func TestDropAcrossColumns(t *testing.T) {
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")
	state = DragOver(state, snap, "bea", 660)

	_, cmd, err := Drop(state, snap)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if cmd.TargetResourceID != "bea" || cmd.NewStart != 660 {
		t.Errorf("command = %+v", cmd)
	}
}

func TestDropWithoutCandidate(t *testing.T) {
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")

	state, cmd, err := Drop(state, snap)
	if cmd != nil || err == nil {
		t.Fatalf("drop without candidate: cmd=%v err=%v", cmd, err)
	}
	if code := rescheduleCode(t, err); code != codeNoCandidate {
		t.Errorf("code = %s, want %s", code, codeNoCandidate)
	}
	if state.Phase != PhaseIdle {
		t.Errorf("state not reset: %+v", state)
	}
}

func TestCancelDrag(t *testing.T) {
	snap := daySnapshot()
	state, _ := BeginDrag(IdleState(), snap, "b1")
	state = DragOver(state, snap, "anna", 780)

	state = CancelDrag(state)
	if state.Phase != PhaseIdle || state.BookingID != "" {
		t.Errorf("cancel left state: %+v", state)
	}
}

// A cell rendered as occupied can never become a drop target, which is what
// keeps a drop from double-booking without a second overlap check.
func TestOccupiedCellNeverDroppable(t *testing.T) {
	snap := daySnapshot()
	g := BuildSlotGrid(snap.Resources, 30)
	cells := ResolveCells(g, snap.Resources, snap.Bookings, snap.TimeOff)

	state, _ := BeginDrag(IdleState(), snap, "b1")
	for _, c := range cells {
		if c.State != models.CellOccupied {
			continue
		}
		if c.ResourceID == "anna" && c.Slot >= 600 && c.Slot < 660 {
			continue // the dragged booking's own cells
		}
		next := DragOver(state, snap, c.ResourceID, c.Slot)
		if next.Phase == PhaseCandidate {
			t.Errorf("occupied cell (%s, %d) accepted as candidate", c.ResourceID, c.Slot)
		}
	}
}
