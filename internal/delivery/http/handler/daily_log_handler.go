package handler

import (
	"encoding/json"
	"net/http"

	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
	"healthguard-api/pkg/validator"
)

type DailyLogHandler struct {
	logUsecase usecase.DailyLogUsecase
	validator  *validator.CustomValidator
}

func NewDailyLogHandler(logUsecase usecase.DailyLogUsecase, validator *validator.CustomValidator) *DailyLogHandler {
	return &DailyLogHandler{
		logUsecase: logUsecase,
		validator:  validator,
	}
}

// UpsertLog handles submitting a day's lifestyle log
// @Summary Upsert a daily log
// @Description Create or overwrite the log for the given date
// @Tags DailyLogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertDailyLogRequest true "Upsert Daily Log Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /daily-logs [put]
func (h *DailyLogHandler) UpsertLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpsertDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	log, err := h.logUsecase.UpsertLog(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to save daily log")
		}
		return
	}

	response.Success(w, http.StatusOK, "Daily log saved successfully", log)
}

// ListLogs handles listing daily logs in a date range, chronological
// @Summary List daily logs
// @Tags DailyLogs
// @Security BearerAuth
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /daily-logs [get]
func (h *DailyLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	logs, err := h.logUsecase.ListLogs(r.Context(), userID, from, to)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to list daily logs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Daily logs retrieved successfully", logs)
}
