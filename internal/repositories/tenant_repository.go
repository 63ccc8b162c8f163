package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-backend/internal/models"
)

type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	query := `
		INSERT INTO tenants (room_id, name, email, phone, password_hash, lease_start, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		tenant.RoomID,
		tenant.Name,
		tenant.Email,
		tenant.Phone,
		tenant.PasswordHash,
		tenant.LeaseStart,
		tenant.IsActive,
	).Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
}

func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	query := `
		SELECT t.id, t.room_id, t.name, t.email, COALESCE(t.phone, ''), t.password_hash,
		       t.lease_start, t.is_active, t.created_at, t.updated_at,
		       COALESCE(rm.room_number, '')
		FROM tenants t
		LEFT JOIN rooms rm ON t.room_id = rm.id
		WHERE t.id = $1
	`

	tenant := &models.Tenant{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&tenant.ID,
		&tenant.RoomID,
		&tenant.Name,
		&tenant.Email,
		&tenant.Phone,
		&tenant.PasswordHash,
		&tenant.LeaseStart,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
		&tenant.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (r *TenantRepository) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	query := `
		SELECT t.id, t.room_id, t.name, t.email, COALESCE(t.phone, ''), t.password_hash,
		       t.lease_start, t.is_active, t.created_at, t.updated_at,
		       COALESCE(rm.room_number, '')
		FROM tenants t
		LEFT JOIN rooms rm ON t.room_id = rm.id
		WHERE t.email = $1
	`

	tenant := &models.Tenant{}
	err := r.DB.QueryRow(ctx, query, email).Scan(
		&tenant.ID,
		&tenant.RoomID,
		&tenant.Name,
		&tenant.Email,
		&tenant.Phone,
		&tenant.PasswordHash,
		&tenant.LeaseStart,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
		&tenant.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	// JOIN with rooms to show the room number without N+1 lookups
	query := `
		SELECT t.id, t.room_id, t.name, t.email, COALESCE(t.phone, ''), t.password_hash,
		       t.lease_start, t.is_active, t.created_at, t.updated_at,
		       COALESCE(rm.room_number, '')
		FROM tenants t
		LEFT JOIN rooms rm ON t.room_id = rm.id
		ORDER BY t.name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		err := rows.Scan(
			&tenant.ID,
			&tenant.RoomID,
			&tenant.Name,
			&tenant.Email,
			&tenant.Phone,
			&tenant.PasswordHash,
			&tenant.LeaseStart,
			&tenant.IsActive,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
			&tenant.RoomNumber,
		)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}

	return tenants, rows.Err()
}

func (r *TenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	query := `
		UPDATE tenants
		SET room_id = $1, name = $2, email = $3, phone = $4,
		    lease_start = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRow(ctx, query,
		tenant.RoomID,
		tenant.Name,
		tenant.Email,
		tenant.Phone,
		tenant.LeaseStart,
		tenant.IsActive,
		tenant.ID,
	).Scan(&tenant.UpdatedAt)
}

func (r *TenantRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM tenants WHERE id = $1", id)
	return err
}
