package models

// Resource represents a bookable staff member (stylist, mechanic, bay).
type Resource struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	Name       string `bson:"name" json:"name"`
	WorkStart  int    `bson:"workStart" json:"workStart"` // minutes from midnight (e.g., 540 for 9:00 AM)
	WorkEnd    int    `bson:"workEnd" json:"workEnd"`     // minutes from midnight (e.g., 1020 for 5:00 PM)
	Active     bool   `bson:"active" json:"active"`       // inactive resources are read-only in the grid
}
