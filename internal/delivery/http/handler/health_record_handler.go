package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
	"healthguard-api/pkg/validator"
)

type HealthRecordHandler struct {
	recordUsecase usecase.HealthRecordUsecase
	validator     *validator.CustomValidator
}

func NewHealthRecordHandler(recordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// CreateRecord handles submitting a vitals record
// @Summary Create a health record
// @Tags HealthRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHealthRecordRequest true "Create Health Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /health-records [post]
func (h *HealthRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.CreateRecord(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create health record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

// ListRecords handles listing vitals records, newest first
// @Summary List health records
// @Tags HealthRecords
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /health-records [get]
func (h *HealthRecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, meta, err := h.recordUsecase.ListRecords(r.Context(), userID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list health records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Health records retrieved successfully", records, meta)
}

// LatestRecord handles getting the most recent vitals record
// @Summary Get latest health record
// @Tags HealthRecords
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /health-records/latest [get]
func (h *HealthRecordHandler) LatestRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	record, err := h.recordUsecase.LatestRecord(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "No health records yet")
		default:
			response.InternalServerError(w, "Failed to get latest health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Latest health record retrieved successfully", record)
}
