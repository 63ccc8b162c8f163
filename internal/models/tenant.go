package models

import "time"

type Tenant struct {
	ID           int        `json:"id"`
	RoomID       *int       `json:"room_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	LeaseStart   *time.Time `json:"lease_start"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Joined from rooms table on list queries
	RoomNumber string `json:"room_number,omitempty"`
}

// CreateTenantRequest represents the request body for creating a tenant
type CreateTenantRequest struct {
	RoomID     *int   `json:"room_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	LeaseStart string `json:"lease_start"` // YYYY-MM-DD
}

// UpdateTenantRequest represents the request body for updating a tenant
type UpdateTenantRequest struct {
	RoomID     *int   `json:"room_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LeaseStart string `json:"lease_start"`
	IsActive   *bool  `json:"is_active"`
}

type TenantLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TenantLoginResponse struct {
	Token  string  `json:"token"`
	Tenant *Tenant `json:"tenant"`
}
