package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// MedicalReportToResponse converts a MedicalReport entity to its DTO
func MedicalReportToResponse(report *entity.MedicalReport) *dto.MedicalReportResponse {
	if report == nil {
		return nil
	}

	return &dto.MedicalReportResponse{
		ID:              report.ID,
		ReportType:      report.ReportType,
		ReportDate:      report.ReportDate.Format("2006-01-02"),
		FileName:        report.FileName,
		FileURL:         report.FileURL,
		Findings:        report.Findings,
		RiskFactors:     report.RiskFactors,
		Recommendations: report.Recommendations,
		CreatedAt:       report.CreatedAt,
	}
}

// MedicalReportsToResponses converts a slice of reports, preserving order
func MedicalReportsToResponses(reports []entity.MedicalReport) []dto.MedicalReportResponse {
	responses := make([]dto.MedicalReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *MedicalReportToResponse(&reports[i]))
	}
	return responses
}
