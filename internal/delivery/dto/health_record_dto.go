package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHealthRecordRequest represents a vitals submission. All measurements
// are optional; a record with only a date is still accepted.
type CreateHealthRecordRequest struct {
	RecordDate             string   `json:"record_date" validate:"required,datetime=2006-01-02"`
	HeartRate              *int     `json:"heart_rate,omitempty" validate:"omitempty,gte=20,lte=250"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty" validate:"omitempty,gte=50,lte=300"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty" validate:"omitempty,gte=30,lte=200"`
	BloodSugar             *float64 `json:"blood_sugar,omitempty" validate:"omitempty,gt=0,lte=1000"`
	Temperature            *float64 `json:"temperature,omitempty" validate:"omitempty,gte=30,lte=45"`
	WeightKg               *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=500"`
	OxygenSaturation       *int     `json:"oxygen_saturation,omitempty" validate:"omitempty,gte=50,lte=100"`
	Notes                  string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// HealthRecordResponse represents one vitals record in responses
type HealthRecordResponse struct {
	ID                     uuid.UUID `json:"id"`
	RecordDate             string    `json:"record_date"`
	HeartRate              *int      `json:"heart_rate,omitempty"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty"`
	BloodSugar             *float64  `json:"blood_sugar,omitempty"`
	Temperature            *float64  `json:"temperature,omitempty"`
	WeightKg               *float64  `json:"weight_kg,omitempty"`
	OxygenSaturation       *int      `json:"oxygen_saturation,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}
