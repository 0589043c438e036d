package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RiskFactorSnapshot captures the profile attributes the scoring engine saw
// at computation time, so past assessments stay interpretable after the
// profile changes.
type RiskFactorSnapshot struct {
	Age        *int     `json:"age"`
	BMI        *float64 `json:"bmi"`
	Conditions []string `json:"conditions"`
}

// RiskAssessment is one run of the risk scoring engine. Assessments are
// append-only; the latest assessment_date is authoritative for display.
type RiskAssessment struct {
	ID                 uuid.UUID                               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID                               `gorm:"type:uuid;not null;index" json:"user_id"`
	AssessmentDate     time.Time                               `gorm:"type:date;not null;index" json:"assessment_date"`
	OverallRiskScore   int                                     `gorm:"not null" json:"overall_risk_score"`
	CardiovascularRisk int                                     `gorm:"not null" json:"cardiovascular_risk"`
	DiabetesRisk       int                                     `gorm:"not null" json:"diabetes_risk"`
	RespiratoryRisk    int                                     `gorm:"not null" json:"respiratory_risk"`
	CancerRisk         int                                     `gorm:"not null" json:"cancer_risk"`
	RiskFactors        datatypes.JSONType[RiskFactorSnapshot]  `gorm:"type:jsonb" json:"risk_factors"`
	Recommendations    datatypes.JSONSlice[string]             `gorm:"type:jsonb" json:"recommendations"`
	CreatedAt          time.Time                               `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RiskAssessment) TableName() string {
	return "risk_assessments"
}
