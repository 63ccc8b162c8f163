package models

import "time"

// Bill statuses
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
	BillStatusPartial = "partial"
)

// Bill item types
const (
	ItemTypeRoomRent         = "room_rent"
	ItemTypeElectricity      = "electricity"
	ItemTypeWater            = "water"
	ItemTypeWifi             = "wifi"
	ItemTypeRemainingBalance = "remaining_balance"
)

type Bill struct {
	ID        int        `json:"id"`
	TenantID  int        `json:"tenant_id"`
	RoomID    int        `json:"room_id"`
	Amount    float64    `json:"amount"`
	DueDate   time.Time  `json:"due_date"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	Items     []BillItem `json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Joined on list queries
	TenantName string `json:"tenant_name,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
}

// BillItem is a single line on a bill. Amount is signed: a negative
// remaining_balance item represents a credit carried from an overpaid month.
type BillItem struct {
	ID       int     `json:"id"`
	BillID   int     `json:"bill_id"`
	ItemType string  `json:"item_type"`
	Amount   float64 `json:"amount"`
	Details  string  `json:"details"`
}

// GenerateBillRequest represents the request body for generating a tenant's
// monthly bill from rates, meter readings and the previous period's balance.
type GenerateBillRequest struct {
	TenantID int    `json:"tenant_id"`
	Month    string `json:"month"`    // YYYY-MM billing period
	DueDate  string `json:"due_date"` // YYYY-MM-DD
	Notes    string `json:"notes"`
}

// BillWithTotals is a bill decorated with amounts recomputed from its
// items and accepted payments, as returned by read endpoints.
type BillWithTotals struct {
	Bill
	TotalBill     float64 `json:"total_bill"`
	TotalPaid     float64 `json:"total_paid"`
	Remaining     float64 `json:"remaining"`
	DerivedStatus string  `json:"derived_status"`
}
