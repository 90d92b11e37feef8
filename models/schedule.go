package models

// DaySchedule is the snapshot the grid engine works from: one business, one
// date, fully fetched into memory. The engine never mutates it.
type DaySchedule struct {
	BusinessID string         `bson:"businessId" json:"businessId"`
	Date       string         `bson:"date" json:"date"`
	Resources  []Resource     `json:"resources"`
	Bookings   []Booking      `json:"bookings"`
	TimeOff    []TimeOffBlock `json:"timeOff"`
}

// RescheduleCommand is the sole mutation artifact the grid emits. Applying it
// (and arbitrating conflicts) belongs to the schedule service and its backend.
type RescheduleCommand struct {
	CommandID        string `json:"commandId"` // idempotency key
	BookingID        string `json:"bookingId"`
	TargetResourceID string `json:"targetResourceId"`
	NewStart         int    `json:"newStart"` // minutes from midnight
}

// CancelBookingCommand asks the backend to cancel a booking outright.
type CancelBookingCommand struct {
	CommandID string `json:"commandId"`
	BookingID string `json:"bookingId"`
}
