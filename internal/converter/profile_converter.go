package converter

import (
	"time"

	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to ProfileResponse DTO.
// Age and BMI are derived at conversion time from the stored measurements.
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProfileResponse{
		UserID:                profile.UserID,
		FullName:              profile.FullName,
		Gender:                profile.Gender,
		HeightCm:              profile.HeightCm,
		WeightKg:              profile.WeightKg,
		Age:                   profile.Age(time.Now()),
		BMI:                   profile.BMI(),
		Phone:                 profile.Phone,
		State:                 profile.State,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		MedicalConditions:     profile.MedicalConditions,
		Allergies:             profile.Allergies,
		Medications:           profile.Medications,
		CreatedAt:             profile.CreatedAt,
		UpdatedAt:             profile.UpdatedAt,
	}

	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	if response.MedicalConditions == nil {
		response.MedicalConditions = []string{}
	}
	if response.Allergies == nil {
		response.Allergies = []string{}
	}
	if response.Medications == nil {
		response.Medications = []string{}
	}

	return response
}
