package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest represents profile update data. Omitted optional
// fields are left unchanged; empty slices clear the corresponding list.
type UpdateProfileRequest struct {
	FullName              string   `json:"full_name" validate:"required,min=2,max=255"`
	DateOfBirth           string   `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender                string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	HeightCm              *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0,lte=300"`
	WeightKg              *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=500"`
	Phone                 string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	State                 string   `json:"state,omitempty" validate:"omitempty,max=100"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty" validate:"omitempty,max=255"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
	MedicalConditions     []string `json:"medical_conditions,omitempty"`
	Allergies             []string `json:"allergies,omitempty"`
	Medications           []string `json:"medications,omitempty"`
}

// ProfileResponse represents profile data with derived metrics
type ProfileResponse struct {
	UserID                uuid.UUID `json:"user_id"`
	FullName              string    `json:"full_name"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	Gender                string    `json:"gender,omitempty"`
	HeightCm              *float64  `json:"height_cm,omitempty"`
	WeightKg              *float64  `json:"weight_kg,omitempty"`
	Age                   *int      `json:"age,omitempty"`
	BMI                   *float64  `json:"bmi,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	State                 string    `json:"state,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	MedicalConditions     []string  `json:"medical_conditions"`
	Allergies             []string  `json:"allergies"`
	Medications           []string  `json:"medications"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
