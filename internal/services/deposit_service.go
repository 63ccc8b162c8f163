package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

// DepositService manages security deposits. Deposits never settle bills
// automatically; they are refunded or forfeited by explicit admin action.
type DepositService struct {
	Repo       *repositories.DepositRepository
	TenantRepo *repositories.TenantRepository
}

func NewDepositService(repo *repositories.DepositRepository, tenantRepo *repositories.TenantRepository) *DepositService {
	return &DepositService{Repo: repo, TenantRepo: tenantRepo}
}

func (s *DepositService) RecordDeposit(ctx context.Context, req *models.CreateDepositRequest) (*models.Deposit, error) {
	if req.Amount <= 0 {
		return nil, errors.New("deposit amount must be positive")
	}
	tenant, err := s.TenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	received := timeutil.Now()
	if req.ReceivedDate != "" {
		received, err = time.ParseInLocation(timeutil.DateLayout, req.ReceivedDate, timeutil.Manila)
		if err != nil {
			return nil, fmt.Errorf("invalid received_date %q: %w", req.ReceivedDate, err)
		}
	}

	deposit := &models.Deposit{
		TenantID:     tenant.ID,
		Amount:       req.Amount,
		ReceivedDate: received,
		Status:       models.DepositStatusHeld,
		Notes:        req.Notes,
	}
	if err := s.Repo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	deposit.TenantName = tenant.Name
	return deposit, nil
}

// ResolveDeposit marks a held deposit refunded or forfeited
func (s *DepositService) ResolveDeposit(ctx context.Context, id int, status, notes string) (*models.Deposit, error) {
	if status != models.DepositStatusRefunded && status != models.DepositStatusForfeited {
		return nil, fmt.Errorf("invalid resolution status: %s", status)
	}

	deposit, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if deposit.Status != models.DepositStatusHeld {
		return nil, fmt.Errorf("deposit is already %s", deposit.Status)
	}

	resolved := timeutil.Now()
	if err := s.Repo.Resolve(ctx, id, status, resolved, notes); err != nil {
		return nil, err
	}
	deposit.Status = status
	deposit.ResolvedDate = &resolved
	if notes != "" {
		deposit.Notes = notes
	}
	return deposit, nil
}

func (s *DepositService) GetDeposit(ctx context.Context, id int) (*models.Deposit, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DepositService) ListDeposits(ctx context.Context) ([]*models.Deposit, error) {
	return s.Repo.List(ctx)
}
