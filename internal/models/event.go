package models

// LegacyDate is one entry of an event's denormalized dates view. It is
// derived from EventDate rows whenever any exist for the event; older
// readers keep consuming it unchanged.
type LegacyDate struct {
	Label string `json:"label"`
	Seats int    `json:"seats"`
}

type Event struct {
	ID            string       `json:"id"`
	Type          string       `json:"type"`
	MonthKey      string       `json:"monthKey"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Image         string       `json:"img"`
	Location      string       `json:"location"`
	TimeRange     string       `json:"timeRange"`
	DurationHours string       `json:"durationHours"`
	Duration      string       `json:"duration"`
	Dates         []LegacyDate `json:"dates"`
}
