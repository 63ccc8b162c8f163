package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type ElectricReadingRepository struct {
	DB *pgxpool.Pool
}

func NewElectricReadingRepository(db *pgxpool.Pool) *ElectricReadingRepository {
	return &ElectricReadingRepository{DB: db}
}

// Upsert records a room's cumulative reading for a month, overwriting a
// correction for the same room+month.
func (r *ElectricReadingRepository) Upsert(ctx context.Context, reading *models.ElectricReading) error {
	query := `
		INSERT INTO electric_readings (room_id, month, reading_kwh)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id, month) DO UPDATE SET
			reading_kwh = EXCLUDED.reading_kwh,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		reading.RoomID,
		reading.Month,
		reading.ReadingKwh,
	).Scan(&reading.ID, &reading.CreatedAt, &reading.UpdatedAt)
}

// GetReading returns the reading for a room+month, or nil when none was
// recorded (first month in a room has no prior reading).
func (r *ElectricReadingRepository) GetReading(ctx context.Context, roomID int, month string) (*float64, error) {
	var kwh float64
	err := r.DB.QueryRow(ctx,
		"SELECT reading_kwh FROM electric_readings WHERE room_id = $1 AND month = $2",
		roomID, month,
	).Scan(&kwh)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kwh, nil
}

func (r *ElectricReadingRepository) ListByMonth(ctx context.Context, month string) ([]*models.ElectricReading, error) {
	query := `
		SELECT er.id, er.room_id, er.month, er.reading_kwh, er.created_at, er.updated_at,
		       rm.room_number
		FROM electric_readings er
		JOIN rooms rm ON er.room_id = rm.id
		WHERE er.month = $1
		ORDER BY rm.room_number
	`

	rows, err := r.DB.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReadings(rows)
}

func (r *ElectricReadingRepository) ListByRoom(ctx context.Context, roomID int) ([]*models.ElectricReading, error) {
	query := `
		SELECT er.id, er.room_id, er.month, er.reading_kwh, er.created_at, er.updated_at,
		       rm.room_number
		FROM electric_readings er
		JOIN rooms rm ON er.room_id = rm.id
		WHERE er.room_id = $1
		ORDER BY er.month DESC
	`

	rows, err := r.DB.Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReadings(rows)
}

func scanReadings(rows pgx.Rows) ([]*models.ElectricReading, error) {
	var readings []*models.ElectricReading
	for rows.Next() {
		reading := &models.ElectricReading{}
		err := rows.Scan(
			&reading.ID,
			&reading.RoomID,
			&reading.Month,
			&reading.ReadingKwh,
			&reading.CreatedAt,
			&reading.UpdatedAt,
			&reading.RoomNumber,
		)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}

func (r *ElectricReadingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM electric_readings WHERE id = $1", id)
	return err
}
