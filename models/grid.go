package models

// CellState classifies one (resource, slot) cell of the grid.
type CellState string

const (
	CellBlocked    CellState = "blocked"    // covered by time off, never droppable
	CellOccupied   CellState = "occupied"   // covered by a booking
	CellAvailable  CellState = "available"  // inside working hours, free
	CellOutOfHours CellState = "outOfHours" // outside working hours, not droppable
)

// SlotGrid is the vertical axis of the schedule: the visible range quantized
// into fixed-width slots. Derived, never persisted.
type SlotGrid struct {
	RangeStart int   `json:"rangeStart"` // minutes from midnight
	RangeEnd   int   `json:"rangeEnd"`
	SlotSize   int   `json:"slotSize"` // minutes per row
	Slots      []int `json:"slots"`    // slot start times, ascending
}

// BookingPlacement maps a booking onto grid rows for one resource column.
type BookingPlacement struct {
	Booking  Booking `json:"booking"`
	RowStart int     `json:"rowStart"`
	RowSpan  int     `json:"rowSpan"`
	Dimmed   bool    `json:"dimmed"` // true when a style filter is set and this booking doesn't match
}

// Cell is one resolved grid cell.
type Cell struct {
	ResourceID string    `json:"resourceId"`
	Slot       int       `json:"slot"` // slot start, minutes from midnight
	State      CellState `json:"state"`
}

// DayView is everything a client needs to render one day's grid.
type DayView struct {
	Date       string                 `json:"date"`
	Grid       SlotGrid               `json:"grid"`
	Resources  []Resource             `json:"resources"`
	Placements []BookingPlacement     `json:"placements"`
	Cells      []Cell                 `json:"cells"`
	TimeOff    []MergedTimeOffSummary `json:"timeOff"`
}
