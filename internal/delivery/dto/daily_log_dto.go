package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertDailyLogRequest represents one day of lifestyle metrics. Submitting
// again for the same date overwrites the previous values.
type UpsertDailyLogRequest struct {
	LogDate         string   `json:"log_date" validate:"required,datetime=2006-01-02"`
	SleepHours      *float64 `json:"sleep_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	ExerciseMinutes *int     `json:"exercise_minutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	StressLevel     *int     `json:"stress_level,omitempty" validate:"omitempty,gte=1,lte=10"`
	CaloriesIntake  *int     `json:"calories_intake,omitempty" validate:"omitempty,gte=0,lte=20000"`
	WaterIntakeML   *int     `json:"water_intake_ml,omitempty" validate:"omitempty,gte=0,lte=20000"`
	MoodLevel       *int     `json:"mood_level,omitempty" validate:"omitempty,gte=1,lte=10"`
	Notes           string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// DailyLogResponse represents one daily log in responses
type DailyLogResponse struct {
	ID              uuid.UUID `json:"id"`
	LogDate         string    `json:"log_date"`
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	ExerciseMinutes *int      `json:"exercise_minutes,omitempty"`
	StressLevel     *int      `json:"stress_level,omitempty"`
	CaloriesIntake  *int      `json:"calories_intake,omitempty"`
	WaterIntakeML   *int      `json:"water_intake_ml,omitempty"`
	MoodLevel       *int      `json:"mood_level,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
