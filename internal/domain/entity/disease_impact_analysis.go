package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RiskTrend classifies whether recent habits are moving a disease risk
type RiskTrend string

const (
	TrendImproving RiskTrend = "improving"
	TrendWorsening RiskTrend = "worsening"
	TrendStable    RiskTrend = "stable"
)

// DiseaseImpactAnalysis is one disease's insight row from the impact engine.
// Three rows are written per generation; old rows are retained as history and
// consumers read latest analysis_date first.
type DiseaseImpactAnalysis struct {
	ID                  uuid.UUID                              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID                              `gorm:"type:uuid;not null;index" json:"user_id"`
	DiseaseName         string                                 `gorm:"type:varchar(100);not null" json:"disease_name"`
	CurrentRiskLevel    int                                    `gorm:"not null" json:"current_risk_level"`
	RiskTrend           RiskTrend                              `gorm:"type:varchar(20);not null" json:"risk_trend"`
	ContributingFactors datatypes.JSONType[map[string]string]  `gorm:"type:jsonb" json:"contributing_factors"`
	PreventiveActions   datatypes.JSONSlice[string]            `gorm:"type:jsonb" json:"preventive_actions"`
	Precautions         datatypes.JSONSlice[string]            `gorm:"type:jsonb" json:"precautions"`
	LifestyleRemedies   datatypes.JSONSlice[string]            `gorm:"type:jsonb" json:"lifestyle_remedies"`
	AnalysisDate        time.Time                              `gorm:"type:date;not null;index" json:"analysis_date"`
	CreatedAt           time.Time                              `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DiseaseImpactAnalysis) TableName() string {
	return "disease_impact_analyses"
}
