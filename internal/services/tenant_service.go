package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-backend/internal/auth"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

type TenantService struct {
	Repo     *repositories.TenantRepository
	RoomRepo *repositories.RoomRepository
}

func NewTenantService(repo *repositories.TenantRepository, roomRepo *repositories.RoomRepository) *TenantService {
	return &TenantService{Repo: repo, RoomRepo: roomRepo}
}

func parseLeaseStart(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(timeutil.DateLayout, value, timeutil.Manila)
	if err != nil {
		return nil, fmt.Errorf("invalid lease_start %q: %w", value, err)
	}
	return &t, nil
}

func (s *TenantService) CreateTenant(ctx context.Context, req *models.CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errors.New("name and email are required")
	}
	if req.Password == "" {
		return nil, errors.New("password is required for portal login")
	}

	leaseStart, err := parseLeaseStart(req.LeaseStart)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenant := &models.Tenant{
		RoomID:       req.RoomID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		LeaseStart:   leaseStart,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	// Assigning a tenant marks the room occupied
	if tenant.RoomID != nil {
		if err := s.RoomRepo.SetStatus(ctx, *tenant.RoomID, models.RoomStatusOccupied); err != nil {
			return nil, fmt.Errorf("failed to mark room occupied: %w", err)
		}
	}

	return tenant, nil
}

func (s *TenantService) GetTenant(ctx context.Context, id int) (*models.Tenant, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TenantService) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	return s.Repo.List(ctx)
}

func (s *TenantService) UpdateTenant(ctx context.Context, id int, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	leaseStart, err := parseLeaseStart(req.LeaseStart)
	if err != nil {
		return nil, err
	}

	previousRoomID := tenant.RoomID

	tenant.RoomID = req.RoomID
	tenant.Name = req.Name
	tenant.Email = req.Email
	tenant.Phone = req.Phone
	if leaseStart != nil {
		tenant.LeaseStart = leaseStart
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	// Keep room occupancy in sync when the tenant moves
	if previousRoomID != nil && (tenant.RoomID == nil || *tenant.RoomID != *previousRoomID) {
		if err := s.RoomRepo.SetStatus(ctx, *previousRoomID, models.RoomStatusAvailable); err != nil {
			return nil, fmt.Errorf("failed to free previous room: %w", err)
		}
	}
	if tenant.RoomID != nil && (previousRoomID == nil || *tenant.RoomID != *previousRoomID) {
		if err := s.RoomRepo.SetStatus(ctx, *tenant.RoomID, models.RoomStatusOccupied); err != nil {
			return nil, fmt.Errorf("failed to mark room occupied: %w", err)
		}
	}

	return tenant, nil
}

func (s *TenantService) DeleteTenant(ctx context.Context, id int) error {
	tenant, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if tenant.RoomID != nil {
		return s.RoomRepo.SetStatus(ctx, *tenant.RoomID, models.RoomStatusAvailable)
	}
	return nil
}
