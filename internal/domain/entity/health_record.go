package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord represents a single point-in-time vitals submission.
// Records are immutable once created; multiple records per day are allowed.
type HealthRecord struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecordDate             time.Time `gorm:"type:date;not null;index" json:"record_date"`
	HeartRate              *int      `json:"heart_rate,omitempty"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty"`
	BloodSugar             *float64  `json:"blood_sugar,omitempty"`
	Temperature            *float64  `json:"temperature,omitempty"`
	WeightKg               *float64  `json:"weight_kg,omitempty"`
	OxygenSaturation       *int      `json:"oxygen_saturation,omitempty"`
	Notes                  string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
