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

// RateHandler exposes monthly billing rates and electric meter readings
type RateHandler struct {
	Service *services.RateService
}

func NewRateHandler(service *services.RateService) *RateHandler {
	return &RateHandler{Service: service}
}

func (h *RateHandler) SetRates(w http.ResponseWriter, r *http.Request) {
	var rate models.BillingRate
	if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.Service.SetRates(r.Context(), &rate)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, saved)
}

func (h *RateHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]
	rate, err := h.Service.GetRates(r.Context(), month)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "No rates set for this month")
		return
	}
	utils.JSON(w, http.StatusOK, rate)
}

func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Service.ListRates(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rates)
}

func (h *RateHandler) RecordReading(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectricReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reading, err := h.Service.RecordReading(r.Context(), &models.ElectricReading{
		RoomID:     req.RoomID,
		Month:      req.Month,
		ReadingKwh: req.ReadingKwh,
	})
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, reading)
}

func (h *RateHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	if month := r.URL.Query().Get("month"); month != "" {
		readings, err := h.Service.ListReadingsByMonth(r.Context(), month)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, readings)
		return
	}

	roomID, err := strconv.Atoi(r.URL.Query().Get("room_id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "month or room_id parameter required")
		return
	}
	readings, err := h.Service.ListReadingsByRoom(r.Context(), roomID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, readings)
}
