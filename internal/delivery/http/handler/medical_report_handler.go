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

type MedicalReportHandler struct {
	reportUsecase usecase.MedicalReportUsecase
	validator     *validator.CustomValidator
}

func NewMedicalReportHandler(reportUsecase usecase.MedicalReportUsecase, validator *validator.CustomValidator) *MedicalReportHandler {
	return &MedicalReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// UploadReport handles uploading a medical report's metadata
// @Summary Upload a medical report
// @Description Store report metadata and its canned analysis
// @Tags MedicalReports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UploadReportRequest true "Upload Report Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports [post]
func (h *MedicalReportHandler) UploadReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UploadReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.UploadReport(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report uploaded successfully", report)
}

// ListReports handles listing uploaded reports, newest first
// @Summary List medical reports
// @Tags MedicalReports
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /reports [get]
func (h *MedicalReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reports, meta, err := h.reportUsecase.ListReports(r.Context(), userID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list reports")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Reports retrieved successfully", reports, meta)
}

// ReportTypes handles listing the supported report types
// @Summary List report types
// @Tags MedicalReports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/types [get]
func (h *MedicalReportHandler) ReportTypes(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Report types retrieved successfully", h.reportUsecase.ReportTypes())
}
