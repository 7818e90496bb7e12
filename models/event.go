package models

import (
	"time"
)

// Event is a catalog entry. Tier is the minimum tier required to view it.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	ImageURL    string    `json:"image_url"`
	Tier        Tier      `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}
