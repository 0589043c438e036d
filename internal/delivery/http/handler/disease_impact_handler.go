package handler

import (
	"net/http"
	"strconv"

	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
)

type DiseaseImpactHandler struct {
	impactUsecase usecase.DiseaseImpactUsecase
}

func NewDiseaseImpactHandler(impactUsecase usecase.DiseaseImpactUsecase) *DiseaseImpactHandler {
	return &DiseaseImpactHandler{
		impactUsecase: impactUsecase,
	}
}

// GenerateInsights handles running the disease impact rules
// @Summary Generate disease impact insights
// @Description Analyze recent daily logs per tracked disease
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 412 {object} response.Response
// @Router /insights/generate [post]
func (h *DiseaseImpactHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	insights, err := h.impactUsecase.GenerateInsights(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrNotEnoughLogs:
			response.PreconditionFailed(w, "Log at least 3 days of health data to generate insights")
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Complete your profile before generating insights")
		default:
			response.InternalServerError(w, "Failed to generate insights")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Insights generated successfully", insights)
}

// ListInsights handles listing generated insights, newest first
// @Summary List disease impact insights
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /insights [get]
func (h *DiseaseImpactHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	insights, err := h.impactUsecase.ListInsights(r.Context(), userID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list insights")
		return
	}

	response.Success(w, http.StatusOK, "Insights retrieved successfully", insights)
}
