package handler

import (
	"net/http"

	"healthguard-api/internal/alerts"
	"healthguard-api/pkg/response"
)

type AlertHandler struct {
}

func NewAlertHandler() *AlertHandler {
	return &AlertHandler{}
}

// ListStates handles listing the states with alert coverage
// @Summary List covered states
// @Tags HealthAlerts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /health-alerts/states [get]
func (h *AlertHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "States retrieved successfully", alerts.States())
}

// ListAlerts handles listing health alerts for a state
// @Summary List health alerts by state
// @Tags HealthAlerts
// @Security BearerAuth
// @Produce json
// @Param state query string true "State name"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /health-alerts [get]
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		response.Error(w, http.StatusBadRequest, "state query parameter is required", nil)
		return
	}

	response.Success(w, http.StatusOK, "Health alerts retrieved successfully", alerts.ByState(state))
}
