package models

import "time"

// Room statuses
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	ID          int       `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Type        string    `json:"type"` // single, double, family
	MonthlyRent float64   `json:"monthly_rent"`
	Status      string    `json:"status"`
	MeterNumber string    `json:"meter_number,omitempty"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRoomRequest represents the request body for creating a room
type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	MonthlyRent float64 `json:"monthly_rent"`
	Status      string  `json:"status"`
	MeterNumber string  `json:"meter_number"`
	Notes       string  `json:"notes"`
}

// UpdateRoomRequest represents the request body for updating a room
type UpdateRoomRequest struct {
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	MonthlyRent float64 `json:"monthly_rent"`
	Status      string  `json:"status"`
	MeterNumber string  `json:"meter_number"`
	Notes       string  `json:"notes"`
}
