package models

import "time"

// EventDate is a schedulable session of an event carrying its own seat
// inventory. SeatsAvailable starts equal to SeatsTotal and only the
// decrement operation may lower it below that.
type EventDate struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Label          string    `json:"label"`
	SeatsTotal     int       `json:"seats_total"`
	SeatsAvailable int       `json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
}
