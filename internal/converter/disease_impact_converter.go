package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// DiseaseImpactToResponse converts a DiseaseImpactAnalysis entity to its DTO
func DiseaseImpactToResponse(analysis *entity.DiseaseImpactAnalysis) *dto.DiseaseImpactResponse {
	if analysis == nil {
		return nil
	}

	factors := analysis.ContributingFactors.Data()
	if factors == nil {
		factors = map[string]string{}
	}

	return &dto.DiseaseImpactResponse{
		ID:                  analysis.ID,
		DiseaseName:         analysis.DiseaseName,
		CurrentRiskLevel:    analysis.CurrentRiskLevel,
		RiskTrend:           string(analysis.RiskTrend),
		ContributingFactors: factors,
		PreventiveActions:   analysis.PreventiveActions,
		Precautions:         analysis.Precautions,
		LifestyleRemedies:   analysis.LifestyleRemedies,
		AnalysisDate:        analysis.AnalysisDate.Format("2006-01-02"),
		CreatedAt:           analysis.CreatedAt,
	}
}

// DiseaseImpactsToResponses converts a slice of analyses, preserving order
func DiseaseImpactsToResponses(analyses []entity.DiseaseImpactAnalysis) []dto.DiseaseImpactResponse {
	responses := make([]dto.DiseaseImpactResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, *DiseaseImpactToResponse(&analyses[i]))
	}
	return responses
}
