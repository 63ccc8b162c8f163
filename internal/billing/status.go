package billing

import (
	"time"

	"rental-backend/internal/models"
)

// DeriveStatus classifies a bill from its paid-vs-total position and due
// date, evaluated in fixed priority order:
//
//  1. totalPaid >= totalBill -> paid
//  2. totalPaid > 0          -> partial
//  3. now after dueDate      -> overdue
//  4. otherwise              -> pending
//
// Derived status is the single source of truth; the persisted status column
// is refreshed from this function on every payment-affecting write and is
// never set by hand.
func DeriveStatus(totalPaid, totalBill float64, dueDate, now time.Time) string {
	switch {
	case totalPaid >= totalBill:
		return models.BillStatusPaid
	case totalPaid > 0:
		return models.BillStatusPartial
	case now.After(dueDate):
		return models.BillStatusOverdue
	default:
		return models.BillStatusPending
	}
}

// StatusFor derives the status of a bill against its payments at the given
// instant.
func StatusFor(bill models.Bill, payments []models.Payment, now time.Time) string {
	return DeriveStatus(TotalPaid(bill.ID, payments), TotalBill(bill), bill.DueDate, now)
}
