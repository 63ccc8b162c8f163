package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type RoomRepository struct {
	DB *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (room_number, type, monthly_rent, status, meter_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		room.RoomNumber,
		room.Type,
		room.MonthlyRent,
		room.Status,
		room.MeterNumber,
		room.Notes,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *RoomRepository) Get(ctx context.Context, id int) (*models.Room, error) {
	query := `
		SELECT id, room_number, type, monthly_rent, status,
		       COALESCE(meter_number, ''), COALESCE(notes, ''), created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	room := &models.Room{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.MonthlyRent,
		&room.Status,
		&room.MeterNumber,
		&room.Notes,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	query := `
		SELECT id, room_number, type, monthly_rent, status,
		       COALESCE(meter_number, ''), COALESCE(notes, ''), created_at, updated_at
		FROM rooms
		ORDER BY room_number
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.Type,
			&room.MonthlyRent,
			&room.Status,
			&room.MeterNumber,
			&room.Notes,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $1, type = $2, monthly_rent = $3, status = $4,
		    meter_number = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRow(ctx, query,
		room.RoomNumber,
		room.Type,
		room.MonthlyRent,
		room.Status,
		room.MeterNumber,
		room.Notes,
		room.ID,
	).Scan(&room.UpdatedAt)
}

func (r *RoomRepository) SetStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE rooms SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	return err
}

func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM rooms WHERE id = $1", id)
	return err
}

// CountByStatus returns the number of rooms per occupancy status
func (r *RoomRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, "SELECT status, COUNT(*) FROM rooms GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{
		models.RoomStatusAvailable:   0,
		models.RoomStatusOccupied:    0,
		models.RoomStatusMaintenance: 0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
