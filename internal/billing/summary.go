package billing

import (
	"time"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

// Summary aggregates a billing period for the admin dashboard. Revenue is
// cash-basis: the accepted payments dated in the month, independent of
// which bill period those payments service.
type Summary struct {
	Month        string         `json:"month"`
	BillCount    int            `json:"bill_count"`
	TotalBilled  float64        `json:"total_billed"`
	Revenue      float64        `json:"revenue"`
	Remaining    float64        `json:"remaining"`
	StatusCounts map[string]int `json:"status_counts"`
}

// TenantTotals aggregates a tenant's position across all their bills for
// the portal dashboard cards.
type TenantTotals struct {
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
	Remaining   float64 `json:"remaining"`
}

// MonthlySummary aggregates bills whose due date falls in the given month
// and payments whose payment date falls in the given month. The two filters
// are independent: a payment recorded in a different month than its bill's
// due month counts toward the payment's own month. Status counts are
// derived at `now` and zero-initialised for all four statuses.
func MonthlySummary(bills []models.Bill, payments []models.Payment, month string, now time.Time) Summary {
	s := Summary{
		Month: month,
		StatusCounts: map[string]int{
			models.BillStatusPending: 0,
			models.BillStatusPaid:    0,
			models.BillStatusOverdue: 0,
			models.BillStatusPartial: 0,
		},
	}

	for _, bill := range bills {
		if timeutil.MonthKey(bill.DueDate) != month {
			continue
		}
		s.BillCount++
		s.TotalBilled += TotalBill(bill)
		s.StatusCounts[StatusFor(bill, payments, now)]++
	}

	for _, p := range payments {
		if p.Status != models.PaymentStatusAccepted {
			continue
		}
		if timeutil.MonthKey(p.PaymentDate) != month {
			continue
		}
		s.Revenue += p.AmountPaid
	}

	s.Remaining = s.TotalBilled - s.Revenue
	return s
}

// TotalsForTenant sums a tenant's billed, paid and remaining amounts over
// the given bills (assumed to all belong to the tenant).
func TotalsForTenant(bills []models.Bill, payments []models.Payment) TenantTotals {
	var t TenantTotals
	for _, bill := range bills {
		t.TotalBilled += TotalBill(bill)
		t.TotalPaid += TotalPaid(bill.ID, payments)
	}
	t.Remaining = t.TotalBilled - t.TotalPaid
	return t
}
