package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile represents patient-specific health profile data
type Profile struct {
	UserID                uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName              string                      `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth           *time.Time                  `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                string                      `gorm:"type:varchar(20)" json:"gender,omitempty"`
	HeightCm              *float64                    `json:"height_cm,omitempty"`
	WeightKg              *float64                    `json:"weight_kg,omitempty"`
	Phone                 string                      `gorm:"type:varchar(20)" json:"phone,omitempty"`
	State                 string                      `gorm:"type:varchar(100)" json:"state,omitempty"`
	EmergencyContactName  string                      `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string                      `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	MedicalConditions     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"medical_conditions"`
	Allergies             datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"allergies"`
	Medications           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"medications"`
	CreatedAt             time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Age returns whole years elapsed since the date of birth, using 365.25-day
// years. Returns nil when no date of birth is recorded.
func (p *Profile) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	years := int(now.Sub(*p.DateOfBirth).Hours() / (365.25 * 24))
	return &years
}

// BMI returns weight_kg / height_m^2, or nil unless both measurements exist.
func (p *Profile) BMI() *float64 {
	if p.HeightCm == nil || p.WeightKg == nil || *p.HeightCm <= 0 {
		return nil
	}
	heightM := *p.HeightCm / 100
	bmi := *p.WeightKg / (heightM * heightM)
	return &bmi
}
