package dto

import (
	"time"

	"github.com/google/uuid"
)

// RiskFactorsResponse is the snapshot of profile attributes behind a score
type RiskFactorsResponse struct {
	Age        *int     `json:"age"`
	BMI        *float64 `json:"bmi"`
	Conditions []string `json:"conditions"`
}

// RiskAssessmentResponse represents one risk assessment in responses
type RiskAssessmentResponse struct {
	ID                 uuid.UUID           `json:"id"`
	AssessmentDate     string              `json:"assessment_date"`
	OverallRiskScore   int                 `json:"overall_risk_score"`
	CardiovascularRisk int                 `json:"cardiovascular_risk"`
	DiabetesRisk       int                 `json:"diabetes_risk"`
	RespiratoryRisk    int                 `json:"respiratory_risk"`
	CancerRisk         int                 `json:"cancer_risk"`
	RiskFactors        RiskFactorsResponse `json:"risk_factors"`
	Recommendations    []string            `json:"recommendations"`
	CreatedAt          time.Time           `json:"created_at"`
}
