package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, timeutil.Manila)
}

func TestMonthlySummaryFiltersByMonth(t *testing.T) {
	now := date(2024, 3, 20)

	bills := []models.Bill{
		{ID: 1, Amount: 1000, DueDate: date(2024, 3, 5)},
		{ID: 2, Amount: 2000, DueDate: date(2024, 3, 28)},
		{ID: 3, Amount: 9000, DueDate: date(2024, 2, 5)}, // previous month
	}
	payments := []models.Payment{
		// Payment in March against a February bill: counted in March (cash basis)
		{BillID: 3, AmountPaid: 700, Status: models.PaymentStatusAccepted, PaymentDate: date(2024, 3, 2)},
		{BillID: 1, AmountPaid: 300, Status: models.PaymentStatusAccepted, PaymentDate: date(2024, 3, 10)},
		// Pending payments never count as revenue
		{BillID: 1, AmountPaid: 500, Status: models.PaymentStatusPending, PaymentDate: date(2024, 3, 11)},
		// Accepted but dated in April: not March revenue
		{BillID: 2, AmountPaid: 400, Status: models.PaymentStatusAccepted, PaymentDate: date(2024, 4, 1)},
	}

	s := MonthlySummary(bills, payments, "2024-03", now)

	assert.Equal(t, "2024-03", s.Month)
	assert.Equal(t, 2, s.BillCount)
	assert.InDelta(t, 3000.0, s.TotalBilled, 0.001)
	assert.InDelta(t, 1000.0, s.Revenue, 0.001)
	assert.InDelta(t, 2000.0, s.Remaining, 0.001)
}

func TestMonthlySummaryStatusCountsZeroInitialised(t *testing.T) {
	s := MonthlySummary(nil, nil, "2024-03", date(2024, 3, 20))

	assert.Len(t, s.StatusCounts, 4)
	for _, status := range []string{
		models.BillStatusPending,
		models.BillStatusPaid,
		models.BillStatusOverdue,
		models.BillStatusPartial,
	} {
		count, ok := s.StatusCounts[status]
		assert.True(t, ok)
		assert.Zero(t, count)
	}
}

func TestMonthlySummaryStatusBreakdown(t *testing.T) {
	now := date(2024, 3, 20)

	bills := []models.Bill{
		{ID: 1, Amount: 1000, DueDate: date(2024, 3, 5)},  // overdue, nothing paid
		{ID: 2, Amount: 1000, DueDate: date(2024, 3, 5)},  // partial
		{ID: 3, Amount: 1000, DueDate: date(2024, 3, 25)}, // pending
		{ID: 4, Amount: 1000, DueDate: date(2024, 3, 25)}, // paid
	}
	payments := []models.Payment{
		{BillID: 2, AmountPaid: 400, Status: models.PaymentStatusAccepted, PaymentDate: date(2024, 3, 8)},
		{BillID: 4, AmountPaid: 1000, Status: models.PaymentStatusAccepted, PaymentDate: date(2024, 3, 9)},
	}

	s := MonthlySummary(bills, payments, "2024-03", now)

	assert.Equal(t, 1, s.StatusCounts[models.BillStatusOverdue])
	assert.Equal(t, 1, s.StatusCounts[models.BillStatusPartial])
	assert.Equal(t, 1, s.StatusCounts[models.BillStatusPending])
	assert.Equal(t, 1, s.StatusCounts[models.BillStatusPaid])
}

func TestMonthlySummaryUsesItemSums(t *testing.T) {
	now := date(2024, 3, 20)
	bills := []models.Bill{
		{
			ID: 1, Amount: 9999, DueDate: date(2024, 3, 5),
			Items: []models.BillItem{{Amount: 5000}, {Amount: 650}},
		},
	}

	s := MonthlySummary(bills, nil, "2024-03", now)
	assert.InDelta(t, 5650.0, s.TotalBilled, 0.001)
}

func TestTotalsForTenant(t *testing.T) {
	bills := []models.Bill{
		{ID: 1, Amount: 1000},
		{ID: 2, Amount: 2000},
	}
	payments := []models.Payment{
		{BillID: 1, AmountPaid: 1000, Status: models.PaymentStatusAccepted},
		{BillID: 2, AmountPaid: 500, Status: models.PaymentStatusAccepted},
		{BillID: 2, AmountPaid: 500, Status: models.PaymentStatusDeclined},
	}

	totals := TotalsForTenant(bills, payments)
	assert.InDelta(t, 3000.0, totals.TotalBilled, 0.001)
	assert.InDelta(t, 1500.0, totals.TotalPaid, 0.001)
	assert.InDelta(t, 1500.0, totals.Remaining, 0.001)
}
