package models

// TimeOffBlock marks a resource as unavailable for an interval on a given date.
// Blocks for the same resource and date may overlap or touch; the grid merges
// them for display.
type TimeOffBlock struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	ResourceID string `bson:"resourceId" json:"resourceId"`
	Date       string `bson:"date" json:"date"`
	Start      int    `bson:"start" json:"start"` // minutes from midnight
	End        int    `bson:"end" json:"end"`     // minutes from midnight
	Reason     string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// MergedInterval is a continuous unavailable block after merging.
type MergedInterval struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"` // e.g., "10:00 AM - 12:00 PM"
}

// MergedTimeOffSummary is the read model for one resource's time off on one date.
type MergedTimeOffSummary struct {
	ResourceID   string           `json:"resourceId"`
	Date         string           `json:"date"`
	Intervals    []MergedInterval `json:"intervals"`
	TotalMinutes int              `json:"totalMinutes"`
}
