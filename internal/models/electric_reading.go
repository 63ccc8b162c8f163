package models

import "time"

// ElectricReading is a cumulative meter reading for a room at the end of a month.
type ElectricReading struct {
	ID         int       `json:"id"`
	RoomID     int       `json:"room_id"`
	Month      string    `json:"month"` // YYYY-MM
	ReadingKwh float64   `json:"reading_kwh"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Joined from rooms table on list queries
	RoomNumber string `json:"room_number,omitempty"`
}

// CreateElectricReadingRequest represents the request body for recording a reading
type CreateElectricReadingRequest struct {
	RoomID     int     `json:"room_id"`
	Month      string  `json:"month"`
	ReadingKwh float64 `json:"reading_kwh"`
}
