package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadReportRequest represents an uploaded medical report's metadata.
// File contents are not persisted; only the name is kept for display.
type UploadReportRequest struct {
	ReportType string `json:"report_type" validate:"required,max=100"`
	ReportDate string `json:"report_date" validate:"required,datetime=2006-01-02"`
	FileName   string `json:"file_name" validate:"required,max=255"`
}

// MedicalReportResponse represents one report with its analysis
type MedicalReportResponse struct {
	ID              uuid.UUID `json:"id"`
	ReportType      string    `json:"report_type"`
	ReportDate      string    `json:"report_date"`
	FileName        string    `json:"file_name"`
	FileURL         string    `json:"file_url,omitempty"`
	Findings        []string  `json:"findings"`
	RiskFactors     []string  `json:"risk_factors"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"created_at"`
}
