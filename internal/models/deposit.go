package models

import "time"

// Deposit statuses
const (
	DepositStatusHeld      = "held"
	DepositStatusRefunded  = "refunded"
	DepositStatusForfeited = "forfeited"
)

// Deposit is a security deposit held against a tenant, refunded or
// forfeited by explicit admin action when the lease ends.
type Deposit struct {
	ID           int        `json:"id"`
	TenantID     int        `json:"tenant_id"`
	Amount       float64    `json:"amount"`
	ReceivedDate time.Time  `json:"received_date"`
	Status       string     `json:"status"`
	ResolvedDate *time.Time `json:"resolved_date"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`

	// Joined on list queries
	TenantName string `json:"tenant_name,omitempty"`
}

// CreateDepositRequest represents the request body for recording a deposit
type CreateDepositRequest struct {
	TenantID     int     `json:"tenant_id"`
	Amount       float64 `json:"amount"`
	ReceivedDate string  `json:"received_date"` // YYYY-MM-DD
	Notes        string  `json:"notes"`
}
