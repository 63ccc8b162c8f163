package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rental-backend/internal/models"
	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	Service *services.BillingService
}

func NewBillHandler(service *services.BillingService) *BillHandler {
	return &BillHandler{Service: service}
}

func (h *BillHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bill, err := h.Service.GenerateBill(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, bill)
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid bill ID")
		return
	}

	bill, err := h.Service.GetBill(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Bill not found")
		return
	}
	utils.JSON(w, http.StatusOK, bill)
}

func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	if tenantIDStr := r.URL.Query().Get("tenant_id"); tenantIDStr != "" {
		tenantID, err := strconv.Atoi(tenantIDStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid tenant ID")
			return
		}
		bills, err := h.Service.ListBillsByTenant(r.Context(), tenantID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, bills)
		return
	}

	bills, err := h.Service.ListBills(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, bills)
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid bill ID")
		return
	}

	if err := h.Service.DeleteBill(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted"})
}
