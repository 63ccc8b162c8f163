package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/models"
)

func TestCalculateBillItemsNoCarryOver(t *testing.T) {
	items := CalculateBillItems(7, 5000, 300, 200, 150, 0)

	require.Len(t, items, 4)
	assert.Equal(t, models.ItemTypeRoomRent, items[0].ItemType)
	assert.Equal(t, models.ItemTypeElectricity, items[1].ItemType)
	assert.Equal(t, models.ItemTypeWater, items[2].ItemType)
	assert.Equal(t, models.ItemTypeWifi, items[3].ItemType)
	assert.InDelta(t, 5650.0, SumItems(items), 0.001)

	for _, item := range items {
		assert.Equal(t, 7, item.BillID)
	}
}

func TestCalculateBillItemsWithRemainingBalance(t *testing.T) {
	items := CalculateBillItems(7, 5000, 300, 200, 150, 250)

	require.Len(t, items, 5)
	last := items[4]
	assert.Equal(t, models.ItemTypeRemainingBalance, last.ItemType)
	assert.InDelta(t, 250.0, last.Amount, 0.001)
	assert.Equal(t, "Remaining Balance from Previous Month", last.Details)
	assert.InDelta(t, 5900.0, SumItems(items), 0.001)
}

func TestCalculateBillItemsWithCredit(t *testing.T) {
	items := CalculateBillItems(7, 5000, 300, 200, 150, -100)

	require.Len(t, items, 5)
	last := items[4]
	assert.Equal(t, models.ItemTypeRemainingBalance, last.ItemType)
	assert.InDelta(t, -100.0, last.Amount, 0.001)
	assert.Contains(t, last.Details, "Credit from Overpayment")
	assert.InDelta(t, 5750.0, SumItems(items), 0.001)
}

func TestApplyCarryOverReplacesExistingItem(t *testing.T) {
	items := CalculateBillItems(3, 5000, 300, 200, 150, 250)

	updated := ApplyCarryOver(items, 3, 400)
	require.Len(t, updated, 5)
	assert.Equal(t, models.ItemTypeRemainingBalance, updated[4].ItemType)
	assert.InDelta(t, 400.0, updated[4].Amount, 0.001)

	// Base items untouched, in order
	for i := 0; i < 4; i++ {
		assert.Equal(t, items[i].ItemType, updated[i].ItemType)
		assert.Equal(t, items[i].Amount, updated[i].Amount)
	}
}

func TestApplyCarryOverRemovesItemWhenZero(t *testing.T) {
	items := CalculateBillItems(3, 5000, 300, 200, 150, 250)

	updated := ApplyCarryOver(items, 3, 0)
	require.Len(t, updated, 4)
	for _, item := range updated {
		assert.NotEqual(t, models.ItemTypeRemainingBalance, item.ItemType)
	}
}

func TestApplyCarryOverSwitchesToCredit(t *testing.T) {
	items := CalculateBillItems(3, 5000, 300, 200, 150, 250)

	updated := ApplyCarryOver(items, 3, -75)
	require.Len(t, updated, 5)
	assert.InDelta(t, -75.0, updated[4].Amount, 0.001)
	assert.Contains(t, updated[4].Details, "Credit from Overpayment")
}

func TestReconcileUnchangedItemsNewStatus(t *testing.T) {
	items := CalculateBillItems(3, 5000, 300, 200, 150, 250)

	// Carry-over came out the same, only time pushed the bill overdue.
	// The item rows must stay put; only the status column changes.
	same := ApplyCarryOver(items, 3, 250)
	assert.Equal(t, ReconcileStatusOnly, Reconcile(items, same, models.BillStatusPending, models.BillStatusOverdue))
	assert.Equal(t, ReconcileNothing, Reconcile(items, same, models.BillStatusPending, models.BillStatusPending))
}

func TestReconcileChangedItems(t *testing.T) {
	items := CalculateBillItems(3, 5000, 300, 200, 150, 250)

	updated := ApplyCarryOver(items, 3, 400)
	assert.Equal(t, ReconcileItems, Reconcile(items, updated, models.BillStatusPending, models.BillStatusPending))

	dropped := ApplyCarryOver(items, 3, 0)
	assert.Equal(t, ReconcileItems, Reconcile(items, dropped, models.BillStatusPending, models.BillStatusPaid))
}

func TestCarryOverDetails(t *testing.T) {
	assert.Equal(t, DetailsRemainingBalance, CarryOverDetails(250))
	assert.Equal(t, DetailsRemainingBalance, CarryOverDetails(0))
	assert.Equal(t, DetailsCredit, CarryOverDetails(-0.01))
}
