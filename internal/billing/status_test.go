package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rental-backend/internal/models"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	pastDue := now.AddDate(0, 0, -5)
	futureDue := now.AddDate(0, 0, 5)

	tests := []struct {
		name    string
		paid    float64
		total   float64
		dueDate time.Time
		want    string
	}{
		{"unpaid past due", 0, 1000, pastDue, models.BillStatusOverdue},
		{"partially paid past due", 400, 1000, pastDue, models.BillStatusPartial},
		{"fully paid past due", 1000, 1000, pastDue, models.BillStatusPaid},
		{"overpaid", 1200, 1000, pastDue, models.BillStatusPaid},
		{"unpaid before due", 0, 1000, futureDue, models.BillStatusPending},
		{"partially paid before due", 1, 1000, futureDue, models.BillStatusPartial},
		{"zero bill", 0, 0, futureDue, models.BillStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.paid, tt.total, tt.dueDate, now))
		})
	}
}

func TestStatusForUsesItemSum(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	bill := models.Bill{
		ID:      1,
		Amount:  500, // stale
		DueDate: now.AddDate(0, 0, 10),
		Items: []models.BillItem{
			{Amount: 1000},
		},
	}
	payments := []models.Payment{
		{BillID: 1, AmountPaid: 500, Status: models.PaymentStatusAccepted},
	}

	// 500 paid of 1000 item total: partial, not paid
	assert.Equal(t, models.BillStatusPartial, StatusFor(bill, payments, now))
}
