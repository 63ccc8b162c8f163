package billing

import (
	"rental-backend/internal/models"
)

// SumItems returns the plain sum of item amounts. The item sum defines the
// bill total whenever items exist; the stored amount is only a fallback for
// bills created without itemization.
func SumItems(items []models.BillItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// TotalBill returns the authoritative total of a bill: the item sum when
// items are present, otherwise the stored amount.
func TotalBill(bill models.Bill) float64 {
	if len(bill.Items) > 0 {
		return SumItems(bill.Items)
	}
	return bill.Amount
}

// TotalPaid sums the accepted payments for a bill. Pending and declined
// payments never reduce a balance.
func TotalPaid(billID int, payments []models.Payment) float64 {
	var paid float64
	for _, p := range payments {
		if p.BillID == billID && p.Status == models.PaymentStatusAccepted {
			paid += p.AmountPaid
		}
	}
	return paid
}

// Remaining returns the bill total minus accepted payments. The result is
// not floored at zero: a negative remaining is an overpayment and is shown
// to callers as a credit.
func Remaining(bill models.Bill, payments []models.Payment) float64 {
	return TotalBill(bill) - TotalPaid(bill.ID, payments)
}

// ElectricUsage returns the kWh consumed between two cumulative meter
// readings. Without a previous reading the usage is 0 (first month in a
// room). A reading lower than the previous one means the meter was reset
// or replaced; that also reads as 0 rather than a negative charge.
func ElectricUsage(current float64, previous *float64) float64 {
	if previous == nil {
		return 0
	}
	usage := current - *previous
	if usage < 0 {
		return 0
	}
	return usage
}

// CarryOver computes the balance carried into the next period from the
// previous period's bill: its remaining amount, which is negative when the
// tenant overpaid. No previous bill means nothing carries over.
func CarryOver(previousBill *models.Bill, previousPayments []models.Payment) float64 {
	if previousBill == nil {
		return 0
	}
	return Remaining(*previousBill, previousPayments)
}
