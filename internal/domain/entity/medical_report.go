package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicalReport stores uploaded report metadata plus the classifier output.
// Reports are immutable once created. File contents are not stored; only the
// original file name and a placeholder reference survive the upload.
type MedicalReport struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	ReportType      string                      `gorm:"type:varchar(100);not null" json:"report_type"`
	ReportDate      time.Time                   `gorm:"type:date;not null" json:"report_date"`
	FileName        string                      `gorm:"type:varchar(255);not null" json:"file_name"`
	FileURL         string                      `gorm:"type:text" json:"file_url"`
	Findings        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"findings"`
	RiskFactors     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"risk_factors"`
	Recommendations datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"recommendations"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}
