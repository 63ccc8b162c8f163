package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type DepositRepository struct {
	DB *pgxpool.Pool
}

func NewDepositRepository(db *pgxpool.Pool) *DepositRepository {
	return &DepositRepository{DB: db}
}

func (r *DepositRepository) Create(ctx context.Context, deposit *models.Deposit) error {
	query := `
		INSERT INTO deposits (tenant_id, amount, received_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		deposit.TenantID,
		deposit.Amount,
		deposit.ReceivedDate,
		deposit.Status,
		deposit.Notes,
	).Scan(&deposit.ID, &deposit.CreatedAt)
}

func (r *DepositRepository) Get(ctx context.Context, id int) (*models.Deposit, error) {
	query := `
		SELECT d.id, d.tenant_id, d.amount, d.received_date, d.status, d.resolved_date,
		       COALESCE(d.notes, ''), d.created_at, t.name
		FROM deposits d
		JOIN tenants t ON d.tenant_id = t.id
		WHERE d.id = $1
	`

	deposit := &models.Deposit{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&deposit.ID,
		&deposit.TenantID,
		&deposit.Amount,
		&deposit.ReceivedDate,
		&deposit.Status,
		&deposit.ResolvedDate,
		&deposit.Notes,
		&deposit.CreatedAt,
		&deposit.TenantName,
	)
	if err != nil {
		return nil, err
	}

	return deposit, nil
}

func (r *DepositRepository) List(ctx context.Context) ([]*models.Deposit, error) {
	query := `
		SELECT d.id, d.tenant_id, d.amount, d.received_date, d.status, d.resolved_date,
		       COALESCE(d.notes, ''), d.created_at, t.name
		FROM deposits d
		JOIN tenants t ON d.tenant_id = t.id
		ORDER BY d.received_date DESC, d.id DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deposits []*models.Deposit
	for rows.Next() {
		deposit := &models.Deposit{}
		err := rows.Scan(
			&deposit.ID,
			&deposit.TenantID,
			&deposit.Amount,
			&deposit.ReceivedDate,
			&deposit.Status,
			&deposit.ResolvedDate,
			&deposit.Notes,
			&deposit.CreatedAt,
			&deposit.TenantName,
		)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}

	return deposits, rows.Err()
}

// Resolve marks a held deposit refunded or forfeited
func (r *DepositRepository) Resolve(ctx context.Context, id int, status string, resolvedDate time.Time, notes string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE deposits SET status = $1, resolved_date = $2, notes = $3 WHERE id = $4",
		status, resolvedDate, notes, id,
	)
	return err
}
