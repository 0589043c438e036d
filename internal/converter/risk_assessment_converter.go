package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// RiskAssessmentToResponse converts a RiskAssessment entity to its DTO
func RiskAssessmentToResponse(assessment *entity.RiskAssessment) *dto.RiskAssessmentResponse {
	if assessment == nil {
		return nil
	}

	snapshot := assessment.RiskFactors.Data()
	conditions := snapshot.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	recommendations := []string(assessment.Recommendations)
	if recommendations == nil {
		recommendations = []string{}
	}

	return &dto.RiskAssessmentResponse{
		ID:                 assessment.ID,
		AssessmentDate:     assessment.AssessmentDate.Format("2006-01-02"),
		OverallRiskScore:   assessment.OverallRiskScore,
		CardiovascularRisk: assessment.CardiovascularRisk,
		DiabetesRisk:       assessment.DiabetesRisk,
		RespiratoryRisk:    assessment.RespiratoryRisk,
		CancerRisk:         assessment.CancerRisk,
		RiskFactors: dto.RiskFactorsResponse{
			Age:        snapshot.Age,
			BMI:        snapshot.BMI,
			Conditions: conditions,
		},
		Recommendations: recommendations,
		CreatedAt:       assessment.CreatedAt,
	}
}

// RiskAssessmentsToResponses converts a slice of assessments, preserving order
func RiskAssessmentsToResponses(assessments []entity.RiskAssessment) []dto.RiskAssessmentResponse {
	responses := make([]dto.RiskAssessmentResponse, 0, len(assessments))
	for i := range assessments {
		responses = append(responses, *RiskAssessmentToResponse(&assessments[i]))
	}
	return responses
}
