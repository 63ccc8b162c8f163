package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/internal/timeutil"
	"rental-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetOverview serves the dashboard overview. Defaults to the current month.
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeutil.MonthKey(timeutil.Now())
	}

	overview, err := h.Service.GetOverview(r.Context(), month)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, overview)
}

// GetSummary serves just the billing summary for a month
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeutil.MonthKey(timeutil.Now())
	}

	summary, err := h.Service.MonthSummary(r.Context(), month)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}
