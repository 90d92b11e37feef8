package models

// Booking statuses as stored on the record.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed appointment occupying a resource for an interval.
// Start and End are exact minutes; rounding to slot rows happens only at placement.
type Booking struct {
	ID           string `bson:"id" json:"id"`
	BusinessID   string `bson:"businessId" json:"businessId"`
	ResourceID   string `bson:"resourceId" json:"resourceId"`
	Date         string `bson:"date" json:"date"` // e.g., "2026-08-31"
	Start        int    `bson:"start" json:"start"` // minutes from midnight
	End          int    `bson:"end" json:"end"`     // minutes from midnight
	Label        string `bson:"label" json:"label"` // service name shown on the card
	CustomerName string `bson:"customerName" json:"customerName"`
	StyleNote    string `bson:"styleNote,omitempty" json:"styleNote,omitempty"` // customer's preferred style, free text
	Status       string `bson:"status" json:"status"`
}

// Duration returns the booking length in minutes.
func (b Booking) Duration() int {
	return b.End - b.Start
}
