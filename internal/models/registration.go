package models

import "time"

type Registration struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	EventDateID    string    `json:"event_date_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MarketingOptIn bool      `json:"marketing_opt_in"`
	CreatedAt      time.Time `json:"created_at"`
}
