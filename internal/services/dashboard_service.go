package services

import (
	"context"
	"encoding/json"
	"log"

	"rental-backend/internal/billing"
	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

// DashboardService produces the admin dashboard numbers: a per-month billing
// summary with cash-basis revenue and current room occupancy. Results are
// cached in Redis for a short TTL.
type DashboardService struct {
	BillRepo    *repositories.BillRepository
	PaymentRepo *repositories.PaymentRepository
	RoomRepo    *repositories.RoomRepository
	TenantRepo  *repositories.TenantRepository
}

func NewDashboardService(
	billRepo *repositories.BillRepository,
	paymentRepo *repositories.PaymentRepository,
	roomRepo *repositories.RoomRepository,
	tenantRepo *repositories.TenantRepository,
) *DashboardService {
	return &DashboardService{
		BillRepo:    billRepo,
		PaymentRepo: paymentRepo,
		RoomRepo:    roomRepo,
		TenantRepo:  tenantRepo,
	}
}

// Overview bundles the month summary with occupancy for the dashboard page
type Overview struct {
	Summary     billing.Summary `json:"summary"`
	Occupancy   map[string]int  `json:"occupancy"`
	TenantCount int             `json:"tenant_count"`
}

// MonthSummary returns the billing summary for a month, served from cache
// when fresh. Revenue counts accepted payments by payment date, so money
// received in a month lands in that month regardless of which bill it pays.
func (s *DashboardService) MonthSummary(ctx context.Context, month string) (*billing.Summary, error) {
	if _, err := timeutil.ParseMonthKey(month); err != nil {
		return nil, err
	}

	if data, ok := cache.GetCachedSummary(ctx, month); ok {
		var summary billing.Summary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
		log.Printf("[Dashboard] discarding malformed cached summary for %s", month)
	}

	bills, err := s.BillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := billing.MonthlySummary(derefBills(bills), deref(payments), month, timeutil.Now())

	if data, err := json.Marshal(summary); err == nil {
		cache.CacheSummary(ctx, month, data)
	}
	return &summary, nil
}

// GetOverview returns the dashboard overview for a month
func (s *DashboardService) GetOverview(ctx context.Context, month string) (*Overview, error) {
	summary, err := s.MonthSummary(ctx, month)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.occupancy(ctx)
	if err != nil {
		return nil, err
	}

	tenants, err := s.TenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Summary:     *summary,
		Occupancy:   occupancy,
		TenantCount: len(tenants),
	}, nil
}

func derefBills(bills []*models.Bill) []models.Bill {
	out := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		out = append(out, *b)
	}
	return out
}

func (s *DashboardService) occupancy(ctx context.Context) (map[string]int, error) {
	if data, ok := cache.GetCached(ctx, cache.OccupancyKey); ok {
		var counts map[string]int
		if err := json.Unmarshal(data, &counts); err == nil {
			return counts, nil
		}
	}

	counts, err := s.RoomRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(counts); err == nil {
		cache.SetCached(ctx, cache.OccupancyKey, data, cache.SummaryTTL)
	}
	return counts, nil
}
