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

type DepositHandler struct {
	Service *services.DepositService
}

func NewDepositHandler(service *services.DepositService) *DepositHandler {
	return &DepositHandler{Service: service}
}

func (h *DepositHandler) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.Service.RecordDeposit(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, deposit)
}

func (h *DepositHandler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid deposit ID")
		return
	}

	deposit, err := h.Service.GetDeposit(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Deposit not found")
		return
	}
	utils.JSON(w, http.StatusOK, deposit)
}

func (h *DepositHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.Service.ListDeposits(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, deposits)
}

// ResolveDeposit marks a held deposit refunded or forfeited
func (h *DepositHandler) ResolveDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid deposit ID")
		return
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.Service.ResolveDeposit(r.Context(), id, req.Status, req.Notes)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, deposit)
}
