// Package billing holds the pure billing math: line-item construction,
// bill aggregation, status derivation and period summaries. Nothing in
// this package performs I/O; every function is a pure function of its
// inputs so the same numbers come out at every call site.
package billing

import (
	"rental-backend/internal/models"
)

// Default line-item labels. The carry-over label depends on the sign of
// the balance, see CarryOverDetails.
const (
	DetailsRoomRent    = "Monthly Room Rent"
	DetailsElectricity = "Electricity Charges"
	DetailsWater       = "Water Bill"
	DetailsWifi        = "WiFi"

	DetailsRemainingBalance = "Remaining Balance from Previous Month"
	DetailsCredit           = "Credit from Overpayment (Previous Month)"
)

// CarryOverDetails returns the label for a carry-over line item. A negative
// carry-over is a credit from an overpaid prior month.
func CarryOverDetails(carryOver float64) string {
	if carryOver < 0 {
		return DetailsCredit
	}
	return DetailsRemainingBalance
}

// CalculateBillItems builds the ordered line items of a monthly bill: rent,
// electricity, water and wifi unconditionally, plus a remaining_balance item
// only when the carry-over from the previous period is non-zero. Inputs are
// taken as-is; the caller is responsible for validating them.
func CalculateBillItems(billID int, rent, electricity, water, wifi, carryOver float64) []models.BillItem {
	items := []models.BillItem{
		{BillID: billID, ItemType: models.ItemTypeRoomRent, Amount: rent, Details: DetailsRoomRent},
		{BillID: billID, ItemType: models.ItemTypeElectricity, Amount: electricity, Details: DetailsElectricity},
		{BillID: billID, ItemType: models.ItemTypeWater, Amount: water, Details: DetailsWater},
		{BillID: billID, ItemType: models.ItemTypeWifi, Amount: wifi, Details: DetailsWifi},
	}

	if carryOver != 0 {
		items = append(items, models.BillItem{
			BillID:   billID,
			ItemType: models.ItemTypeRemainingBalance,
			Amount:   carryOver,
			Details:  CarryOverDetails(carryOver),
		})
	}

	return items
}

// ReconcileAction says what, if anything, a detail read must persist after
// carry-over reconciliation.
type ReconcileAction int

const (
	ReconcileNothing ReconcileAction = iota
	ReconcileStatusOnly
	ReconcileItems
)

// Reconcile compares a bill's stored items and status with the freshly
// reconciled ones. Item rows are rewritten only when the item sum actually
// moved; a status change on its own is a single column update.
func Reconcile(oldItems, newItems []models.BillItem, oldStatus, newStatus string) ReconcileAction {
	if SumItems(newItems) != SumItems(oldItems) {
		return ReconcileItems
	}
	if newStatus != oldStatus {
		return ReconcileStatusOnly
	}
	return ReconcileNothing
}

// ApplyCarryOver reconciles a bill's items against a freshly computed
// carry-over: any existing remaining_balance item is dropped and a new one
// appended when the carry-over is non-zero. Base items are preserved in
// order. This is the single place carry-over reconciliation happens; read
// paths call it instead of mutating fetched items ad hoc.
func ApplyCarryOver(items []models.BillItem, billID int, carryOver float64) []models.BillItem {
	updated := make([]models.BillItem, 0, len(items)+1)
	for _, item := range items {
		if item.ItemType == models.ItemTypeRemainingBalance {
			continue
		}
		updated = append(updated, item)
	}

	if carryOver != 0 {
		updated = append(updated, models.BillItem{
			BillID:   billID,
			ItemType: models.ItemTypeRemainingBalance,
			Amount:   carryOver,
			Details:  CarryOverDetails(carryOver),
		})
	}

	return updated
}
