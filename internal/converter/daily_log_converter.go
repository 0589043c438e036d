package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// DailyLogToResponse converts a DailyHealthLog entity to its DTO
func DailyLogToResponse(log *entity.DailyHealthLog) *dto.DailyLogResponse {
	if log == nil {
		return nil
	}

	return &dto.DailyLogResponse{
		ID:              log.ID,
		LogDate:         log.LogDate.Format("2006-01-02"),
		SleepHours:      log.SleepHours,
		ExerciseMinutes: log.ExerciseMinutes,
		StressLevel:     log.StressLevel,
		CaloriesIntake:  log.CaloriesIntake,
		WaterIntakeML:   log.WaterIntakeML,
		MoodLevel:       log.MoodLevel,
		Notes:           log.Notes,
		CreatedAt:       log.CreatedAt,
		UpdatedAt:       log.UpdatedAt,
	}
}

// DailyLogsToResponses converts a slice of logs, preserving order
func DailyLogsToResponses(logs []entity.DailyHealthLog) []dto.DailyLogResponse {
	responses := make([]dto.DailyLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *DailyLogToResponse(&logs[i]))
	}
	return responses
}
