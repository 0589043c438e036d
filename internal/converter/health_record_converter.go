package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// HealthRecordToResponse converts a HealthRecord entity to its DTO
func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:                     record.ID,
		RecordDate:             record.RecordDate.Format("2006-01-02"),
		HeartRate:              record.HeartRate,
		BloodPressureSystolic:  record.BloodPressureSystolic,
		BloodPressureDiastolic: record.BloodPressureDiastolic,
		BloodSugar:             record.BloodSugar,
		Temperature:            record.Temperature,
		WeightKg:               record.WeightKg,
		OxygenSaturation:       record.OxygenSaturation,
		Notes:                  record.Notes,
		CreatedAt:              record.CreatedAt,
	}
}

// HealthRecordsToResponses converts a slice of records, preserving order
func HealthRecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *HealthRecordToResponse(&records[i]))
	}
	return responses
}
