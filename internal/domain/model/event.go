package model

import "time"

// Event, RSVP and Share are reference entities used by the demo seeder.
// No handler operates on them beyond storage.

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedBy   int       `json:"created_by"`
}

type RSVP struct {
	ID      int `json:"id"`
	UserID  int `json:"user_id"`
	EventID int `json:"event_id"`
}

type Share struct {
	ID      int `json:"id"`
	UserID  int `json:"user_id"`
	EventID int `json:"event_id"`
}
