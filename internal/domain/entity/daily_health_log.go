package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyHealthLog records one day of lifestyle metrics.
// (user_id, log_date) is unique; submissions for an existing date upsert.
type DailyHealthLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	LogDate         time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_logs_user_date" json:"log_date"`
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	ExerciseMinutes *int      `json:"exercise_minutes,omitempty"`
	StressLevel     *int      `json:"stress_level,omitempty"`
	CaloriesIntake  *int      `json:"calories_intake,omitempty"`
	WaterIntakeML   *int      `json:"water_intake_ml,omitempty"`
	MoodLevel       *int      `json:"mood_level,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DailyHealthLog) TableName() string {
	return "daily_health_logs"
}
