package handler

import (
	"net/http"
	"strconv"

	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
)

type RiskAssessmentHandler struct {
	assessmentUsecase usecase.RiskAssessmentUsecase
}

func NewRiskAssessmentHandler(assessmentUsecase usecase.RiskAssessmentUsecase) *RiskAssessmentHandler {
	return &RiskAssessmentHandler{
		assessmentUsecase: assessmentUsecase,
	}
}

// GenerateAssessment handles running the risk scorer for the current user
// @Summary Generate a risk assessment
// @Description Score the user's profile and recent vitals
// @Tags RiskAssessments
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /risk-assessments/generate [post]
func (h *RiskAssessmentHandler) GenerateAssessment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	assessment, err := h.assessmentUsecase.GenerateAssessment(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Complete your profile before generating an assessment")
		default:
			response.InternalServerError(w, "Failed to generate risk assessment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Risk assessment generated successfully", assessment)
}

// ListAssessments handles listing past assessments, newest first
// @Summary List risk assessments
// @Tags RiskAssessments
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /risk-assessments [get]
func (h *RiskAssessmentHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	assessments, err := h.assessmentUsecase.ListAssessments(r.Context(), userID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list risk assessments")
		return
	}

	response.Success(w, http.StatusOK, "Risk assessments retrieved successfully", assessments)
}

// LatestAssessment handles getting the most recent assessment
// @Summary Get latest risk assessment
// @Tags RiskAssessments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /risk-assessments/latest [get]
func (h *RiskAssessmentHandler) LatestAssessment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	assessment, err := h.assessmentUsecase.LatestAssessment(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrAssessmentNotFound:
			response.NotFound(w, "No risk assessments yet")
		default:
			response.InternalServerError(w, "Failed to get latest risk assessment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Latest risk assessment retrieved successfully", assessment)
}
