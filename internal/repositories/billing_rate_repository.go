package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type BillingRateRepository struct {
	DB *pgxpool.Pool
}

func NewBillingRateRepository(db *pgxpool.Pool) *BillingRateRepository {
	return &BillingRateRepository{DB: db}
}

// Upsert sets the rates for a month, overwriting an existing row. Rates are
// edited until bills for the month are generated, so last write wins.
func (r *BillingRateRepository) Upsert(ctx context.Context, rate *models.BillingRate) error {
	query := `
		INSERT INTO billing_rates (month, electricity_rate_kwh, water_rate, wifi_rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (month) DO UPDATE SET
			electricity_rate_kwh = EXCLUDED.electricity_rate_kwh,
			water_rate = EXCLUDED.water_rate,
			wifi_rate = EXCLUDED.wifi_rate,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		rate.Month,
		rate.ElectricityRateKwh,
		rate.WaterRate,
		rate.WifiRate,
	).Scan(&rate.ID, &rate.CreatedAt, &rate.UpdatedAt)
}

func (r *BillingRateRepository) GetByMonth(ctx context.Context, month string) (*models.BillingRate, error) {
	query := `
		SELECT id, month, electricity_rate_kwh, water_rate, wifi_rate, created_at, updated_at
		FROM billing_rates
		WHERE month = $1
	`

	rate := &models.BillingRate{}
	err := r.DB.QueryRow(ctx, query, month).Scan(
		&rate.ID,
		&rate.Month,
		&rate.ElectricityRateKwh,
		&rate.WaterRate,
		&rate.WifiRate,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rate, nil
}

func (r *BillingRateRepository) List(ctx context.Context) ([]*models.BillingRate, error) {
	query := `
		SELECT id, month, electricity_rate_kwh, water_rate, wifi_rate, created_at, updated_at
		FROM billing_rates
		ORDER BY month DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*models.BillingRate
	for rows.Next() {
		rate := &models.BillingRate{}
		err := rows.Scan(
			&rate.ID,
			&rate.Month,
			&rate.ElectricityRateKwh,
			&rate.WaterRate,
			&rate.WifiRate,
			&rate.CreatedAt,
			&rate.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}

func (r *BillingRateRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM billing_rates WHERE id = $1", id)
	return err
}
