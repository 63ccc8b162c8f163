package services

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/internal/cache"
	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"
)

// PaymentService records payments against bills and runs the review flow
// for tenant-submitted references. Only accepted payments ever count toward
// a bill's paid total.
type PaymentService struct {
	PaymentRepo *repositories.PaymentRepository
	BillRepo    *repositories.BillRepository
	Billing     *BillingService
}

func NewPaymentService(paymentRepo *repositories.PaymentRepository, billRepo *repositories.BillRepository, billing *BillingService) *PaymentService {
	return &PaymentService{
		PaymentRepo: paymentRepo,
		BillRepo:    billRepo,
		Billing:     billing,
	}
}

func validPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodGcash, models.PaymentMethodBank, models.PaymentMethodInPerson:
		return true
	}
	return false
}

// RecordPayment creates a payment against a bill. In-person payments taken
// at the counter are accepted immediately; GCash and bank transfers start
// pending until an admin reviews the reference number.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.AmountPaid <= 0 {
		return nil, errors.New("payment amount must be positive")
	}
	if !validPaymentMethod(req.Method) {
		return nil, fmt.Errorf("invalid payment method: %s", req.Method)
	}
	if req.Method != models.PaymentMethodInPerson && req.ReferenceNumber == "" {
		return nil, errors.New("reference number is required for gcash and bank payments")
	}

	bill, err := s.BillRepo.Get(ctx, req.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	status := models.PaymentStatusPending
	if req.Method == models.PaymentMethodInPerson {
		status = models.PaymentStatusAccepted
	}

	payment := &models.Payment{
		BillID:          bill.ID,
		TenantID:        bill.TenantID,
		AmountPaid:      req.AmountPaid,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		Status:          status,
		PaymentDate:     timeutil.Now(),
		Notes:           req.Notes,
	}
	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(payment.Method).Inc()

	if payment.Status == models.PaymentStatusAccepted {
		if err := s.Billing.RefreshStatus(ctx, bill.ID); err != nil {
			return nil, err
		}
		cache.InvalidateSummaries(ctx)
	}
	return payment, nil
}

// SubmitTenantPayment records a tenant-submitted payment reference after
// verifying the bill belongs to that tenant. Always lands pending.
func (s *PaymentService) SubmitTenantPayment(ctx context.Context, tenantID int, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.Method == models.PaymentMethodInPerson {
		return nil, errors.New("in-person payments are recorded at the office")
	}

	bill, err := s.BillRepo.Get(ctx, req.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if bill.TenantID != tenantID {
		return nil, errors.New("bill does not belong to this tenant")
	}
	return s.RecordPayment(ctx, req)
}

// ReviewPayment accepts or declines a pending payment and re-derives the
// bill's status from the new paid total.
func (s *PaymentService) ReviewPayment(ctx context.Context, id int, accept bool, notes string) (*models.Payment, error) {
	payment, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, fmt.Errorf("payment is already %s", payment.Status)
	}

	status := models.PaymentStatusDeclined
	if accept {
		status = models.PaymentStatusAccepted
	}
	if err := s.PaymentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	payment.Status = status
	if notes != "" {
		payment.Notes = notes
	}

	metrics.PaymentsReviewed.WithLabelValues(status).Inc()

	if err := s.Billing.RefreshStatus(ctx, payment.BillID); err != nil {
		return nil, err
	}
	cache.InvalidateSummaries(ctx)
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	return s.PaymentRepo.Get(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.PaymentRepo.List(ctx)
}

func (s *PaymentService) ListPaymentsByBill(ctx context.Context, billID int) ([]*models.Payment, error) {
	return s.PaymentRepo.ListByBill(ctx, billID)
}

func (s *PaymentService) ListPaymentsByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	return s.PaymentRepo.ListByTenant(ctx, tenantID)
}
