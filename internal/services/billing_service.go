package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-backend/internal/billing"
	"rental-backend/internal/cache"
	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

// BillingService owns the bill-generation workflow and the freshness rule:
// a bill's total, remaining amount and status are recomputed from current
// items and accepted payments on every read, never trusted from storage.
type BillingService struct {
	BillRepo    *repositories.BillRepository
	PaymentRepo *repositories.PaymentRepository
	TenantRepo  *repositories.TenantRepository
	RoomRepo    *repositories.RoomRepository
	RateRepo    *repositories.BillingRateRepository
	ReadingRepo *repositories.ElectricReadingRepository

	DefaultDueDay int
}

func NewBillingService(
	billRepo *repositories.BillRepository,
	paymentRepo *repositories.PaymentRepository,
	tenantRepo *repositories.TenantRepository,
	roomRepo *repositories.RoomRepository,
	rateRepo *repositories.BillingRateRepository,
	readingRepo *repositories.ElectricReadingRepository,
	defaultDueDay int,
) *BillingService {
	return &BillingService{
		BillRepo:      billRepo,
		PaymentRepo:   paymentRepo,
		TenantRepo:    tenantRepo,
		RoomRepo:      roomRepo,
		RateRepo:      rateRepo,
		ReadingRepo:   readingRepo,
		DefaultDueDay: defaultDueDay,
	}
}

// GenerateBill builds a tenant's bill for a month: room rent, metered
// electricity, flat water and wifi from the month's rates, plus the balance
// or credit carried over from the previous period's bill.
func (s *BillingService) GenerateBill(ctx context.Context, req *models.GenerateBillRequest) (*models.BillWithTotals, error) {
	if _, err := timeutil.ParseMonthKey(req.Month); err != nil {
		return nil, err
	}

	tenant, err := s.TenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tenant.RoomID == nil {
		return nil, errors.New("tenant has no room assigned")
	}

	existing, err := s.BillRepo.GetByTenantAndMonth(ctx, tenant.ID, req.Month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("bill for %s already exists for this tenant", req.Month)
	}

	room, err := s.RoomRepo.Get(ctx, *tenant.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	rate, err := s.RateRepo.GetByMonth(ctx, req.Month)
	if err != nil {
		return nil, fmt.Errorf("no billing rates set for %s", req.Month)
	}

	usage, electricityCharge, err := s.electricityFor(ctx, room.ID, req.Month, rate.ElectricityRateKwh)
	if err != nil {
		return nil, err
	}

	carryOver, err := s.carryOverFor(ctx, tenant.ID, req.Month)
	if err != nil {
		return nil, err
	}

	dueDate, err := s.dueDateFor(req.Month, req.DueDate)
	if err != nil {
		return nil, err
	}

	items := billing.CalculateBillItems(0, room.MonthlyRent, electricityCharge, rate.WaterRate, rate.WifiRate, carryOver)
	// Annotate the electricity line with the metered breakdown
	items[1].Details = fmt.Sprintf("%.1f kWh x %.4f/kWh", usage, rate.ElectricityRateKwh)

	now := timeutil.Now()
	total := billing.SumItems(items)

	bill := &models.Bill{
		TenantID: tenant.ID,
		RoomID:   room.ID,
		Amount:   total,
		DueDate:  dueDate,
		Status:   billing.DeriveStatus(0, total, dueDate, now),
		Notes:    req.Notes,
		Items:    items,
	}
	if err := s.BillRepo.CreateWithItems(ctx, bill); err != nil {
		return nil, err
	}

	metrics.BillsGenerated.Inc()
	cache.InvalidateSummaries(ctx)
	bill.TenantName = tenant.Name
	bill.RoomNumber = room.RoomNumber

	return s.withTotals(*bill, nil, now), nil
}

// electricityFor computes the month's metered usage and charge for a room
func (s *BillingService) electricityFor(ctx context.Context, roomID int, month string, ratePerKwh float64) (usage, charge float64, err error) {
	current, err := s.ReadingRepo.GetReading(ctx, roomID, month)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get meter reading: %w", err)
	}
	if current == nil {
		// No reading recorded for the month: bill electricity as zero
		return 0, 0, nil
	}

	prevMonth, err := timeutil.PreviousMonthKey(month)
	if err != nil {
		return 0, 0, err
	}
	previous, err := s.ReadingRepo.GetReading(ctx, roomID, prevMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get previous meter reading: %w", err)
	}

	usage = billing.ElectricUsage(*current, previous)
	return usage, usage * ratePerKwh, nil
}

// carryOverFor computes the balance carried into a month from the tenant's
// previous period bill (positive debt, negative credit, 0 without one).
func (s *BillingService) carryOverFor(ctx context.Context, tenantID int, month string) (float64, error) {
	prevMonth, err := timeutil.PreviousMonthKey(month)
	if err != nil {
		return 0, err
	}

	prevBill, err := s.BillRepo.GetByTenantAndMonth(ctx, tenantID, prevMonth)
	if err != nil {
		return 0, err
	}
	if prevBill == nil {
		return 0, nil
	}

	prevPayments, err := s.PaymentRepo.ListByBill(ctx, prevBill.ID)
	if err != nil {
		return 0, err
	}
	return billing.CarryOver(prevBill, deref(prevPayments)), nil
}

func (s *BillingService) dueDateFor(month, dueDate string) (time.Time, error) {
	if dueDate != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, dueDate, timeutil.Manila)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid due_date %q: %w", dueDate, err)
		}
		return t, nil
	}
	start, err := timeutil.ParseMonthKey(month)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, s.DefaultDueDay-1), nil
}

// GetBill returns a bill with items reconciled against the live carry-over
// from the previous period and totals recomputed from accepted payments.
// When the reconciliation changes the item set the stored bill is updated
// so later list reads see the same numbers.
func (s *BillingService) GetBill(ctx context.Context, id int) (*models.BillWithTotals, error) {
	bill, err := s.BillRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByBill(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	flat := deref(payments)
	now := timeutil.Now()

	// Itemized bills get their carry-over line refreshed on read; manual
	// bills without items keep their stored amount.
	if len(bill.Items) > 0 {
		month := timeutil.MonthKey(bill.DueDate)
		carryOver, err := s.carryOverFor(ctx, bill.TenantID, month)
		if err != nil {
			return nil, err
		}

		updated := billing.ApplyCarryOver(bill.Items, bill.ID, carryOver)
		newTotal := billing.SumItems(updated)
		newStatus := billing.DeriveStatus(billing.TotalPaid(bill.ID, flat), newTotal, bill.DueDate, now)

		switch billing.Reconcile(bill.Items, updated, bill.Status, newStatus) {
		case billing.ReconcileItems:
			if err := s.BillRepo.ReplaceItems(ctx, bill.ID, updated, newTotal, newStatus); err != nil {
				return nil, err
			}
			bill.Items = updated
			bill.Amount = newTotal
			bill.Status = newStatus
		case billing.ReconcileStatusOnly:
			if err := s.BillRepo.UpdateStatus(ctx, bill.ID, newStatus); err != nil {
				return nil, err
			}
			bill.Status = newStatus
		}
	}

	return s.withTotals(*bill, flat, now), nil
}

// ListBills returns all bills with totals and status derived from current
// payments. Stored carry-over items are summed as-is here; the per-bill
// reconciliation happens on the detail read.
func (s *BillingService) ListBills(ctx context.Context) ([]*models.BillWithTotals, error) {
	bills, err := s.BillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(bills, deref(payments)), nil
}

func (s *BillingService) ListBillsByTenant(ctx context.Context, tenantID int) ([]*models.BillWithTotals, error) {
	bills, err := s.BillRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.decorate(bills, deref(payments)), nil
}

func (s *BillingService) DeleteBill(ctx context.Context, id int) error {
	if err := s.BillRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummaries(ctx)
	return nil
}

// RefreshStatus re-derives and persists a bill's status from its current
// payments. Called after every payment-affecting write.
func (s *BillingService) RefreshStatus(ctx context.Context, billID int) error {
	bill, err := s.BillRepo.Get(ctx, billID)
	if err != nil {
		return err
	}
	payments, err := s.PaymentRepo.ListByBill(ctx, billID)
	if err != nil {
		return err
	}

	status := billing.StatusFor(*bill, deref(payments), timeutil.Now())
	if status == bill.Status {
		return nil
	}
	return s.BillRepo.UpdateStatus(ctx, billID, status)
}

func (s *BillingService) decorate(bills []*models.Bill, payments []models.Payment) []*models.BillWithTotals {
	now := timeutil.Now()
	out := make([]*models.BillWithTotals, 0, len(bills))
	for _, bill := range bills {
		out = append(out, s.withTotals(*bill, payments, now))
	}
	return out
}

func (s *BillingService) withTotals(bill models.Bill, payments []models.Payment, now time.Time) *models.BillWithTotals {
	total := billing.TotalBill(bill)
	paid := billing.TotalPaid(bill.ID, payments)
	return &models.BillWithTotals{
		Bill:          bill,
		TotalBill:     total,
		TotalPaid:     paid,
		Remaining:     total - paid,
		DerivedStatus: billing.DeriveStatus(paid, total, bill.DueDate, now),
	}
}

func deref(payments []*models.Payment) []models.Payment {
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, *p)
	}
	return out
}
