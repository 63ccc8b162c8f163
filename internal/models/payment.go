package models

import "time"

// Payment methods
const (
	PaymentMethodGcash    = "gcash"
	PaymentMethodBank     = "bank"
	PaymentMethodInPerson = "in_person"
)

// Payment statuses. Only accepted payments count toward a bill's paid total.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusAccepted = "accepted"
	PaymentStatusDeclined = "declined"
)

type Payment struct {
	ID              int       `json:"id"`
	BillID          int       `json:"bill_id"`
	TenantID        int       `json:"tenant_id"`
	AmountPaid      float64   `json:"amount_paid"`
	PaymentDate     time.Time `json:"payment_date"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"reference_number"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	// Joined on list queries
	TenantName string `json:"tenant_name,omitempty"`
}

// CreatePaymentRequest represents the request body for recording a payment.
// GCash and bank payments carry the sender's reference number and start out
// pending until an admin verifies them.
type CreatePaymentRequest struct {
	BillID          int     `json:"bill_id"`
	AmountPaid      float64 `json:"amount_paid"`
	Method          string  `json:"method"`
	ReferenceNumber string  `json:"reference_number"`
	Notes           string  `json:"notes"`
}
