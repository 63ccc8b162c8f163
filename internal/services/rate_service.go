package services

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

// RateService manages monthly billing rates and electric meter readings
type RateService struct {
	RateRepo    *repositories.BillingRateRepository
	ReadingRepo *repositories.ElectricReadingRepository
	RoomRepo    *repositories.RoomRepository
}

func NewRateService(
	rateRepo *repositories.BillingRateRepository,
	readingRepo *repositories.ElectricReadingRepository,
	roomRepo *repositories.RoomRepository,
) *RateService {
	return &RateService{RateRepo: rateRepo, ReadingRepo: readingRepo, RoomRepo: roomRepo}
}

// SetRates creates or replaces the billing rates for a month
func (s *RateService) SetRates(ctx context.Context, rate *models.BillingRate) (*models.BillingRate, error) {
	if _, err := timeutil.ParseMonthKey(rate.Month); err != nil {
		return nil, err
	}
	if rate.ElectricityRateKwh < 0 || rate.WaterRate < 0 || rate.WifiRate < 0 {
		return nil, errors.New("rates cannot be negative")
	}
	if err := s.RateRepo.Upsert(ctx, rate); err != nil {
		return nil, err
	}
	cache.InvalidateSummaries(ctx)
	return rate, nil
}

func (s *RateService) GetRates(ctx context.Context, month string) (*models.BillingRate, error) {
	return s.RateRepo.GetByMonth(ctx, month)
}

func (s *RateService) ListRates(ctx context.Context) ([]*models.BillingRate, error) {
	return s.RateRepo.List(ctx)
}

// RecordReading creates or replaces a room's meter reading for a month
func (s *RateService) RecordReading(ctx context.Context, reading *models.ElectricReading) (*models.ElectricReading, error) {
	if _, err := timeutil.ParseMonthKey(reading.Month); err != nil {
		return nil, err
	}
	if reading.ReadingKwh < 0 {
		return nil, errors.New("meter reading cannot be negative")
	}
	if _, err := s.RoomRepo.Get(ctx, reading.RoomID); err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if err := s.ReadingRepo.Upsert(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *RateService) ListReadingsByMonth(ctx context.Context, month string) ([]*models.ElectricReading, error) {
	return s.ReadingRepo.ListByMonth(ctx, month)
}

func (s *RateService) ListReadingsByRoom(ctx context.Context, roomID int) ([]*models.ElectricReading, error) {
	return s.ReadingRepo.ListByRoom(ctx, roomID)
}
