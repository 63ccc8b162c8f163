package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CheckDuplicatePayment checks if the same tenant submitted the same amount
// against the same bill within the last 10 seconds (double-click guard).
func (r *PaymentRepository) CheckDuplicatePayment(ctx context.Context, billID, tenantID int, amountPaid float64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM payments
		WHERE bill_id = $1
		AND tenant_id = $2
		AND amount_paid = $3
		AND created_at > NOW() - INTERVAL '10 seconds'
	`
	var count int
	err := r.DB.QueryRow(ctx, query, billID, tenantID, amountPaid).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	isDuplicate, err := r.CheckDuplicatePayment(ctx, payment.BillID, payment.TenantID, payment.AmountPaid)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate payment: %w", err)
	}
	if isDuplicate {
		return fmt.Errorf("duplicate payment detected: a payment of %.2f for this bill was already submitted within the last 10 seconds", payment.AmountPaid)
	}

	query := `
		INSERT INTO payments (bill_id, tenant_id, amount_paid, payment_date, method, reference_number, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		payment.BillID,
		payment.TenantID,
		payment.AmountPaid,
		payment.PaymentDate,
		payment.Method,
		payment.ReferenceNumber,
		payment.Status,
		payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	query := `
		SELECT p.id, p.bill_id, p.tenant_id, p.amount_paid, p.payment_date, p.method,
		       COALESCE(p.reference_number, ''), p.status, COALESCE(p.notes, ''), p.created_at,
		       t.name
		FROM payments p
		JOIN tenants t ON p.tenant_id = t.id
		WHERE p.id = $1
	`

	payment := &models.Payment{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.BillID,
		&payment.TenantID,
		&payment.AmountPaid,
		&payment.PaymentDate,
		&payment.Method,
		&payment.ReferenceNumber,
		&payment.Status,
		&payment.Notes,
		&payment.CreatedAt,
		&payment.TenantName,
	)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	query := `
		SELECT p.id, p.bill_id, p.tenant_id, p.amount_paid, p.payment_date, p.method,
		       COALESCE(p.reference_number, ''), p.status, COALESCE(p.notes, ''), p.created_at,
		       t.name
		FROM payments p
		JOIN tenants t ON p.tenant_id = t.id
		ORDER BY p.payment_date DESC, p.id DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) ListByBill(ctx context.Context, billID int) ([]*models.Payment, error) {
	query := `
		SELECT p.id, p.bill_id, p.tenant_id, p.amount_paid, p.payment_date, p.method,
		       COALESCE(p.reference_number, ''), p.status, COALESCE(p.notes, ''), p.created_at,
		       t.name
		FROM payments p
		JOIN tenants t ON p.tenant_id = t.id
		WHERE p.bill_id = $1
		ORDER BY p.payment_date DESC, p.id DESC
	`

	rows, err := r.DB.Query(ctx, query, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	query := `
		SELECT p.id, p.bill_id, p.tenant_id, p.amount_paid, p.payment_date, p.method,
		       COALESCE(p.reference_number, ''), p.status, COALESCE(p.notes, ''), p.created_at,
		       t.name
		FROM payments p
		JOIN tenants t ON p.tenant_id = t.id
		WHERE p.tenant_id = $1
		ORDER BY p.payment_date DESC, p.id DESC
	`

	rows, err := r.DB.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// UpdateStatus moves a payment to accepted or declined
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE payments SET status = $1 WHERE id = $2",
		status, id,
	)
	return err
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.BillID,
			&payment.TenantID,
			&payment.AmountPaid,
			&payment.PaymentDate,
			&payment.Method,
			&payment.ReferenceNumber,
			&payment.Status,
			&payment.Notes,
			&payment.CreatedAt,
			&payment.TenantName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
