package dto

import (
	"time"

	"github.com/google/uuid"
)

// DiseaseImpactResponse represents one disease insight in responses
type DiseaseImpactResponse struct {
	ID                  uuid.UUID         `json:"id"`
	DiseaseName         string            `json:"disease_name"`
	CurrentRiskLevel    int               `json:"current_risk_level"`
	RiskTrend           string            `json:"risk_trend"`
	ContributingFactors map[string]string `json:"contributing_factors"`
	PreventiveActions   []string          `json:"preventive_actions"`
	Precautions         []string          `json:"precautions"`
	LifestyleRemedies   []string          `json:"lifestyle_remedies"`
	AnalysisDate        string            `json:"analysis_date"`
	CreatedAt           time.Time         `json:"created_at"`
}
