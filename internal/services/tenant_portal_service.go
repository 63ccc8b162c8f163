package services

import (
	"context"
	"errors"

	"rental-backend/internal/auth"
	"rental-backend/internal/billing"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
)

// TenantPortalService serves the tenant-facing portal: login, the tenant's
// own bills with live totals, and payment history.
type TenantPortalService struct {
	TenantRepo *repositories.TenantRepository
	Billing    *BillingService
	Payments   *PaymentService
	JWTManager *auth.JWTManager
}

func NewTenantPortalService(
	tenantRepo *repositories.TenantRepository,
	billingSvc *BillingService,
	payments *PaymentService,
	jwtManager *auth.JWTManager,
) *TenantPortalService {
	return &TenantPortalService{
		TenantRepo: tenantRepo,
		Billing:    billingSvc,
		Payments:   payments,
		JWTManager: jwtManager,
	}
}

// Login authenticates a tenant by portal email and password
func (s *TenantPortalService) Login(ctx context.Context, req *models.TenantLoginRequest) (*models.TenantLoginResponse, error) {
	tenant, err := s.TenantRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if tenant.PasswordHash == "" {
		return nil, errors.New("portal access is not enabled for this tenant")
	}
	if !auth.VerifyPassword(tenant.PasswordHash, req.Password) {
		return nil, errors.New("invalid email or password")
	}

	token, err := s.JWTManager.GenerateTenantToken(tenant)
	if err != nil {
		return nil, err
	}
	tenant.PasswordHash = ""
	return &models.TenantLoginResponse{Token: token, Tenant: tenant}, nil
}

// Statement is the tenant's account view: bills with live totals plus
// lifetime totals across all of them.
type Statement struct {
	Tenant *models.Tenant           `json:"tenant"`
	Bills  []*models.BillWithTotals `json:"bills"`
	Totals billing.TenantTotals     `json:"totals"`
}

// GetStatement returns a tenant's bills and running totals
func (s *TenantPortalService) GetStatement(ctx context.Context, tenantID int) (*Statement, error) {
	tenant, err := s.TenantRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	tenant.PasswordHash = ""

	bills, err := s.Billing.ListBillsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	payments, err := s.Payments.ListPaymentsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	plain := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		plain = append(plain, b.Bill)
	}

	return &Statement{
		Tenant: tenant,
		Bills:  bills,
		Totals: billing.TotalsForTenant(plain, deref(payments)),
	}, nil
}

// GetBill returns one of the tenant's own bills with totals
func (s *TenantPortalService) GetBill(ctx context.Context, tenantID, billID int) (*models.BillWithTotals, error) {
	bill, err := s.Billing.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Bill.TenantID != tenantID {
		return nil, errors.New("bill does not belong to this tenant")
	}
	return bill, nil
}

// ListPayments returns the tenant's own payment history
func (s *TenantPortalService) ListPayments(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.Payments.ListPaymentsByTenant(ctx, tenantID)
}
