package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-backend/internal/models"
)

func TestSumItemsEmpty(t *testing.T) {
	assert.Zero(t, SumItems(nil))
	assert.Zero(t, SumItems([]models.BillItem{}))
}

func TestSumItemsSigned(t *testing.T) {
	items := []models.BillItem{
		{ItemType: models.ItemTypeRoomRent, Amount: 5000},
		{ItemType: models.ItemTypeElectricity, Amount: 300},
		{ItemType: models.ItemTypeRemainingBalance, Amount: -100},
	}
	assert.InDelta(t, 5200.0, SumItems(items), 0.001)
}

func TestTotalBillPrefersItemSum(t *testing.T) {
	bill := models.Bill{
		ID:     1,
		Amount: 9999, // stale stored amount
		Items: []models.BillItem{
			{Amount: 5000},
			{Amount: 650},
		},
	}
	assert.InDelta(t, 5650.0, TotalBill(bill), 0.001)
}

func TestTotalBillFallsBackToStoredAmount(t *testing.T) {
	// Legacy/manual bills have no items
	bill := models.Bill{ID: 1, Amount: 4500}
	assert.InDelta(t, 4500.0, TotalBill(bill), 0.001)
}

func TestTotalPaidCountsOnlyAccepted(t *testing.T) {
	payments := []models.Payment{
		{BillID: 1, AmountPaid: 500, Status: models.PaymentStatusAccepted},
		{BillID: 1, AmountPaid: 200, Status: models.PaymentStatusPending},
		{BillID: 1, AmountPaid: 300, Status: models.PaymentStatusDeclined},
		{BillID: 2, AmountPaid: 999, Status: models.PaymentStatusAccepted}, // other bill
	}
	assert.InDelta(t, 500.0, TotalPaid(1, payments), 0.001)
}

func TestRemaining(t *testing.T) {
	bill := models.Bill{ID: 1, Amount: 1000}
	payments := []models.Payment{
		{BillID: 1, AmountPaid: 500, Status: models.PaymentStatusAccepted},
		{BillID: 1, AmountPaid: 200, Status: models.PaymentStatusPending},
	}
	assert.InDelta(t, 500.0, Remaining(bill, payments), 0.001)
}

func TestRemainingCanGoNegative(t *testing.T) {
	// Overpayment is a credit; no clamping at zero
	bill := models.Bill{ID: 1, Amount: 1000}
	payments := []models.Payment{
		{BillID: 1, AmountPaid: 1200, Status: models.PaymentStatusAccepted},
	}
	assert.InDelta(t, -200.0, Remaining(bill, payments), 0.001)
}

func TestRemainingZeroBillZeroItems(t *testing.T) {
	bill := models.Bill{ID: 1, Amount: 0}
	assert.Zero(t, Remaining(bill, nil))
}

func TestElectricUsage(t *testing.T) {
	prev := 1200.0
	assert.InDelta(t, 150.0, ElectricUsage(1350, &prev), 0.001)
}

func TestElectricUsageNoPreviousReading(t *testing.T) {
	assert.Zero(t, ElectricUsage(1350, nil))
}

func TestElectricUsageMeterReset(t *testing.T) {
	prev := 9000.0
	assert.Zero(t, ElectricUsage(42, &prev))
}

func TestCarryOver(t *testing.T) {
	prev := models.Bill{ID: 9, Amount: 1000}
	payments := []models.Payment{
		{BillID: 9, AmountPaid: 400, Status: models.PaymentStatusAccepted},
	}

	assert.InDelta(t, 600.0, CarryOver(&prev, payments), 0.001)
	assert.Zero(t, CarryOver(nil, payments))
}

func TestCarryOverCreditFromOverpaidMonth(t *testing.T) {
	prev := models.Bill{ID: 9, Amount: 1000}
	payments := []models.Payment{
		{BillID: 9, AmountPaid: 1100, Status: models.PaymentStatusAccepted},
	}
	assert.InDelta(t, -100.0, CarryOver(&prev, payments), 0.001)
}
