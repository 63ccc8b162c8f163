package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// TenantStatementPDF serves a tenant's statement of account as a PDF
func (h *ReportHandler) TenantStatementPDF(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	data, err := h.Service.GetStatementData(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	pdf, err := h.Service.GenerateStatementPDF(data)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement_tenant_%d.pdf", tenantID))
	w.Write(pdf)
}

// PaymentReceiptPDF serves a receipt for an accepted payment
func (h *ReportHandler) PaymentReceiptPDF(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	pdf, err := h.Service.GenerateReceiptPDF(r.Context(), paymentID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%d.pdf", paymentID))
	w.Write(pdf)
}

// MonthlyCSV serves a month's bills as a CSV export
func (h *ReportHandler) MonthlyCSV(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]

	data, err := h.Service.GenerateMonthlyCSV(r.Context(), month)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bills_%s.csv", month))
	w.Write(data)
}
