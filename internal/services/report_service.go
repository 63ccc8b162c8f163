package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"rental-backend/internal/billing"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// StatementData holds all data for a tenant statement PDF
type StatementData struct {
	Tenant   *models.Tenant
	Bills    []*models.BillWithTotals
	Payments []*models.Payment
	Totals   billing.TenantTotals
}

// ReportService generates PDF statements, payment receipts and CSV exports
type ReportService struct {
	TenantRepo  *repositories.TenantRepository
	PaymentRepo *repositories.PaymentRepository
	Billing     *BillingService
	Dashboard   *DashboardService
}

func NewReportService(
	tenantRepo *repositories.TenantRepository,
	paymentRepo *repositories.PaymentRepository,
	billingSvc *BillingService,
	dashboard *DashboardService,
) *ReportService {
	return &ReportService{
		TenantRepo:  tenantRepo,
		PaymentRepo: paymentRepo,
		Billing:     billingSvc,
		Dashboard:   dashboard,
	}
}

// GetStatementData fetches everything needed for a tenant statement
func (s *ReportService) GetStatementData(ctx context.Context, tenantID int) (*StatementData, error) {
	tenant, err := s.TenantRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant not found: %w", err)
	}

	bills, err := s.Billing.ListBillsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	plain := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		plain = append(plain, b.Bill)
	}

	return &StatementData{
		Tenant:   tenant,
		Bills:    bills,
		Payments: payments,
		Totals:   billing.TotalsForTenant(plain, deref(payments)),
	}, nil
}

// GenerateStatementPDF generates a statement of account PDF for a tenant
func (s *ReportService) GenerateStatementPDF(data *StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Room Rental - Statement of Account", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Tenant Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", data.Tenant.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", data.Tenant.Phone), "RB", 1, "L", false, 0, "")
	room := data.Tenant.RoomNumber
	if room == "" {
		room = "unassigned"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Room: %s", room), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Email: %s", data.Tenant.Email), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Bill table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bills", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "Month", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Due Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Paid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Balance", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, b := range data.Bills {
		pdf.CellFormat(30, 6, timeutil.MonthKey(b.Bill.DueDate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, b.Bill.DueDate.Format(timeutil.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("PHP %.2f", b.TotalBill), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("PHP %.2f", b.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", b.Remaining), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, b.DerivedStatus, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Balance - highlight if outstanding
	if data.Totals.Remaining > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	balanceText := fmt.Sprintf("Balance Due: PHP %.2f", data.Totals.Remaining)
	if data.Totals.Remaining <= 0 {
		balanceText = "FULLY PAID"
	}
	pdf.CellFormat(190, 10, balanceText, "1", 1, "C", true, 0, "")

	// Payment history if any
	if len(data.Payments) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Payment History", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(30, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Amount", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Method", "1", 0, "C", true, 0, "")
		pdf.CellFormat(60, 7, "Reference", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Status", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, p := range data.Payments {
			pdf.CellFormat(30, 6, p.PaymentDate.Format(timeutil.DateLayout), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("PHP %.2f", p.AmountPaid), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, p.Method, "1", 0, "C", false, 0, "")
			ref := p.ReferenceNumber
			if len(ref) > 28 {
				ref = ref[:25] + "..."
			}
			pdf.CellFormat(60, 6, ref, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, p.Status, "1", 1, "C", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateReceiptPDF generates a receipt for an accepted payment
func (s *ReportService) GenerateReceiptPDF(ctx context.Context, paymentID int) ([]byte, error) {
	payment, err := s.PaymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusAccepted {
		return nil, fmt.Errorf("cannot issue a receipt for a %s payment", payment.Status)
	}
	tenant, err := s.TenantRepo.Get(ctx, payment.TenantID)
	if err != nil {
		return nil, err
	}
	bill, err := s.Billing.GetBill(ctx, payment.BillID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(128, 10, "Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(128, 5, fmt.Sprintf("Receipt #%d", payment.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(128, 7, fmt.Sprintf("Received from: %s", tenant.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(128, 7, fmt.Sprintf("Date: %s", payment.PaymentDate.Format("02-Jan-2006 03:04 PM")), "", 1, "L", false, 0, "")
	pdf.CellFormat(128, 7, fmt.Sprintf("For bill due %s", bill.Bill.DueDate.Format(timeutil.DateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(128, 7, fmt.Sprintf("Method: %s", payment.Method), "", 1, "L", false, 0, "")
	if payment.ReferenceNumber != "" {
		pdf.CellFormat(128, 7, fmt.Sprintf("Reference: %s", payment.ReferenceNumber), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(128, 10, fmt.Sprintf("Amount Paid: PHP %.2f", payment.AmountPaid), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Ln(2)
	pdf.CellFormat(128, 6, fmt.Sprintf("Remaining balance on bill: PHP %.2f", bill.Remaining), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateMonthlyCSV exports a month's bills as a CSV file
func (s *ReportService) GenerateMonthlyCSV(ctx context.Context, month string) ([]byte, error) {
	if _, err := timeutil.ParseMonthKey(month); err != nil {
		return nil, err
	}

	bills, err := s.Billing.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Tenant", "Room", "Due Date", "Total", "Paid", "Remaining", "Status"})

	for _, b := range bills {
		if timeutil.MonthKey(b.Bill.DueDate) != month {
			continue
		}
		w.Write([]string{
			b.Bill.TenantName,
			b.Bill.RoomNumber,
			b.Bill.DueDate.Format(timeutil.DateLayout),
			strconv.FormatFloat(b.TotalBill, 'f', 2, 64),
			strconv.FormatFloat(b.TotalPaid, 'f', 2, 64),
			strconv.FormatFloat(b.Remaining, 'f', 2, 64),
			b.DerivedStatus,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
