package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
)

type RoomService struct {
	Repo *repositories.RoomRepository
}

func NewRoomService(repo *repositories.RoomRepository) *RoomService {
	return &RoomService{Repo: repo}
}

func validRoomStatus(status string) bool {
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied, models.RoomStatusMaintenance:
		return true
	}
	return false
}

func (s *RoomService) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.Room, error) {
	if req.RoomNumber == "" {
		return nil, errors.New("room number is required")
	}
	status := req.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	if !validRoomStatus(status) {
		return nil, errors.New("invalid room status")
	}

	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		MonthlyRent: req.MonthlyRent,
		Status:      status,
		MeterNumber: req.MeterNumber,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	return s.Repo.Get(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.Repo.List(ctx)
}

func (s *RoomService) UpdateRoom(ctx context.Context, id int, req *models.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validRoomStatus(req.Status) {
		return nil, errors.New("invalid room status")
	}

	room.RoomNumber = req.RoomNumber
	room.Type = req.Type
	room.MonthlyRent = req.MonthlyRent
	room.Status = req.Status
	room.MeterNumber = req.MeterNumber
	room.Notes = req.Notes

	if err := s.Repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
