package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rental-backend/internal/middleware"
	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// TenantPortalHandler serves the tenant-facing API. Every authenticated
// route reads the tenant ID from the token, never from the request.
type TenantPortalHandler struct {
	Service  *services.TenantPortalService
	Payments *services.PaymentService
	Reports  *services.ReportService
}

func NewTenantPortalHandler(service *services.TenantPortalService, payments *services.PaymentService, reports *services.ReportService) *TenantPortalHandler {
	return &TenantPortalHandler{Service: service, Payments: payments, Reports: reports}
}

func (h *TenantPortalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.TenantLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *TenantPortalHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	statement, err := h.Service.GetStatement(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, statement)
}

func (h *TenantPortalHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	billID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid bill ID")
		return
	}

	bill, err := h.Service.GetBill(r.Context(), tenantID, billID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, bill)
}

// SubmitPayment lets a tenant submit a GCash or bank payment reference
func (h *TenantPortalHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Payments.SubmitTenantPayment(r.Context(), tenantID, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

func (h *TenantPortalHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	payments, err := h.Service.ListPayments(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// StatementPDF serves the tenant's own statement as a PDF
func (h *TenantPortalHandler) StatementPDF(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Tenant ID not found in context")
		return
	}

	data, err := h.Reports.GetStatementData(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	pdf, err := h.Reports.GenerateStatementPDF(data)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=statement.pdf")
	w.Write(pdf)
}
