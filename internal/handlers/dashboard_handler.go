package handlers

import (
	"net/http"
	"strconv"

	"qsplan-backend/internal/models"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	Service *services.DashboardService
	History *services.HistoryService
}

func NewDashboardHandler(s *services.DashboardService, history *services.HistoryService) *DashboardHandler {
	return &DashboardHandler{Service: s, History: history}
}

// Statistics handles GET /api/dashboard/statistics
func (h *DashboardHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Statistics(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}

// RecentActivity handles GET /api/history
func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	events, err := h.History.Recent(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to retrieve history")
		return
	}
	if events == nil {
		events = []*models.HistoryEvent{}
	}
	utils.JSON(w, http.StatusOK, events)
}

// ProjectActivity handles GET /api/projects/{id}/history
func (h *DashboardHandler) ProjectActivity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	events, err := h.History.RecentForProject(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to retrieve history")
		return
	}
	if events == nil {
		events = []*models.HistoryEvent{}
	}
	utils.JSON(w, http.StatusOK, events)
}
