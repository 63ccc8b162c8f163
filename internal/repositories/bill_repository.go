package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type BillRepository struct {
	DB *pgxpool.Pool
}

func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{DB: db}
}

// CreateWithItems inserts a bill and its line items in one transaction so a
// bill can never exist half-itemized.
func (r *BillRepository) CreateWithItems(ctx context.Context, bill *models.Bill) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bills (tenant_id, room_id, amount, due_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		bill.TenantID,
		bill.RoomID,
		bill.Amount,
		bill.DueDate,
		bill.Status,
		bill.Notes,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		item.BillID = bill.ID
		err = tx.QueryRow(ctx,
			"INSERT INTO bill_items (bill_id, item_type, amount, details) VALUES ($1, $2, $3, $4) RETURNING id",
			item.BillID, item.ItemType, item.Amount, item.Details,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get returns a bill with its items loaded
func (r *BillRepository) Get(ctx context.Context, id int) (*models.Bill, error) {
	query := `
		SELECT b.id, b.tenant_id, b.room_id, b.amount, b.due_date, b.status,
		       COALESCE(b.notes, ''), b.created_at, b.updated_at,
		       t.name, rm.room_number
		FROM bills b
		JOIN tenants t ON b.tenant_id = t.id
		JOIN rooms rm ON b.room_id = rm.id
		WHERE b.id = $1
	`

	bill := &models.Bill{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&bill.ID,
		&bill.TenantID,
		&bill.RoomID,
		&bill.Amount,
		&bill.DueDate,
		&bill.Status,
		&bill.Notes,
		&bill.CreatedAt,
		&bill.UpdatedAt,
		&bill.TenantName,
		&bill.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	bill.Items, err = r.getItems(ctx, bill.ID)
	if err != nil {
		return nil, err
	}

	return bill, nil
}

func (r *BillRepository) getItems(ctx context.Context, billID int) ([]models.BillItem, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT id, bill_id, item_type, amount, COALESCE(details, '') FROM bill_items WHERE bill_id = $1 ORDER BY id",
		billID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.BillItem
	for rows.Next() {
		var item models.BillItem
		if err := rows.Scan(&item.ID, &item.BillID, &item.ItemType, &item.Amount, &item.Details); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// loadItemsForBills attaches items to a list of bills in one query
func (r *BillRepository) loadItemsForBills(ctx context.Context, bills []*models.Bill) error {
	if len(bills) == 0 {
		return nil
	}

	byID := make(map[int]*models.Bill, len(bills))
	ids := make([]int, 0, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	rows, err := r.DB.Query(ctx,
		"SELECT id, bill_id, item_type, amount, COALESCE(details, '') FROM bill_items WHERE bill_id = ANY($1) ORDER BY id",
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.BillItem
		if err := rows.Scan(&item.ID, &item.BillID, &item.ItemType, &item.Amount, &item.Details); err != nil {
			return err
		}
		if bill, ok := byID[item.BillID]; ok {
			bill.Items = append(bill.Items, item)
		}
	}
	return rows.Err()
}

func (r *BillRepository) List(ctx context.Context) ([]*models.Bill, error) {
	query := `
		SELECT b.id, b.tenant_id, b.room_id, b.amount, b.due_date, b.status,
		       COALESCE(b.notes, ''), b.created_at, b.updated_at,
		       t.name, rm.room_number
		FROM bills b
		JOIN tenants t ON b.tenant_id = t.id
		JOIN rooms rm ON b.room_id = rm.id
		ORDER BY b.due_date DESC, b.id DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills, err := scanBills(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItemsForBills(ctx, bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *BillRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Bill, error) {
	query := `
		SELECT b.id, b.tenant_id, b.room_id, b.amount, b.due_date, b.status,
		       COALESCE(b.notes, ''), b.created_at, b.updated_at,
		       t.name, rm.room_number
		FROM bills b
		JOIN tenants t ON b.tenant_id = t.id
		JOIN rooms rm ON b.room_id = rm.id
		WHERE b.tenant_id = $1
		ORDER BY b.due_date DESC, b.id DESC
	`

	rows, err := r.DB.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills, err := scanBills(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItemsForBills(ctx, bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetByTenantAndMonth returns the tenant's bill whose due date falls in the
// given YYYY-MM period, or nil when none exists.
func (r *BillRepository) GetByTenantAndMonth(ctx context.Context, tenantID int, month string) (*models.Bill, error) {
	query := `
		SELECT b.id
		FROM bills b
		WHERE b.tenant_id = $1 AND to_char(b.due_date, 'YYYY-MM') = $2
		ORDER BY b.id DESC
		LIMIT 1
	`

	var id int
	err := r.DB.QueryRow(ctx, query, tenantID, month).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// ReplaceItems swaps a bill's items and stored amount in one transaction.
// Used when carry-over reconciliation changes the item set.
func (r *BillRepository) ReplaceItems(ctx context.Context, billID int, items []models.BillItem, amount float64, status string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM bill_items WHERE bill_id = $1", billID); err != nil {
		return err
	}

	for _, item := range items {
		_, err := tx.Exec(ctx,
			"INSERT INTO bill_items (bill_id, item_type, amount, details) VALUES ($1, $2, $3, $4)",
			billID, item.ItemType, item.Amount, item.Details,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		"UPDATE bills SET amount = $1, status = $2, updated_at = NOW() WHERE id = $3",
		amount, status, billID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateStatus refreshes the persisted status column. The value always
// comes from billing.DeriveStatus, never from user input.
func (r *BillRepository) UpdateStatus(ctx context.Context, billID int, status string) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE bills SET status = $1, updated_at = NOW() WHERE id = $2",
		status, billID,
	)
	return err
}

func (r *BillRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM bills WHERE id = $1", id)
	return err
}

func scanBills(rows pgx.Rows) ([]*models.Bill, error) {
	var bills []*models.Bill
	for rows.Next() {
		bill := &models.Bill{}
		err := rows.Scan(
			&bill.ID,
			&bill.TenantID,
			&bill.RoomID,
			&bill.Amount,
			&bill.DueDate,
			&bill.Status,
			&bill.Notes,
			&bill.CreatedAt,
			&bill.UpdatedAt,
			&bill.TenantName,
			&bill.RoomNumber,
		)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}
