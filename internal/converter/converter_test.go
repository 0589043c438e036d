package converter

import (
	"testing"
	"time"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestProfileToResponse(t *testing.T) {
	dob := time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC)
	height := 170.0
	weight := 80.0

	profile := &entity.Profile{
		UserID:            uuid.New(),
		FullName:          "Asha Verma",
		DateOfBirth:       &dob,
		HeightCm:          &height,
		WeightKg:          &weight,
		State:             "Kerala",
		MedicalConditions: datatypes.JSONSlice[string]{"diabetes"},
	}

	resp := ProfileToResponse(profile)
	if resp == nil {
		t.Fatal("response is nil")
	}

	if resp.DateOfBirth != "1985-03-12" {
		t.Errorf("date_of_birth = %q, want 1985-03-12", resp.DateOfBirth)
	}
	if resp.Age == nil {
		t.Fatal("age is nil with date of birth set")
	}
	if resp.BMI == nil {
		t.Fatal("bmi is nil with height and weight set")
	}
	// 80 / 1.70^2
	if *resp.BMI < 27.6 || *resp.BMI > 27.8 {
		t.Errorf("bmi = %v, want about 27.7", *resp.BMI)
	}
	if len(resp.MedicalConditions) != 1 || resp.MedicalConditions[0] != "diabetes" {
		t.Errorf("medical_conditions = %v", resp.MedicalConditions)
	}
	// empty lists serialize as [], not null
	if resp.Allergies == nil || resp.Medications == nil {
		t.Error("nil list fields not normalized to empty slices")
	}
}

func TestProfileToResponseEmpty(t *testing.T) {
	resp := ProfileToResponse(&entity.Profile{UserID: uuid.New(), FullName: "X"})
	if resp.Age != nil {
		t.Error("age should be nil without date of birth")
	}
	if resp.BMI != nil {
		t.Error("bmi should be nil without measurements")
	}
	if resp.DateOfBirth != "" {
		t.Errorf("date_of_birth = %q, want empty", resp.DateOfBirth)
	}

	if ProfileToResponse(nil) != nil {
		t.Error("nil profile should convert to nil")
	}
}

func TestRiskAssessmentToResponse(t *testing.T) {
	age := 52
	bmi := 31.2
	assessment := &entity.RiskAssessment{
		ID:                 uuid.New(),
		AssessmentDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		OverallRiskScore:   65,
		CardiovascularRisk: 63,
		DiabetesRisk:       60,
		RespiratoryRisk:    55,
		CancerRisk:         50,
		RiskFactors: datatypes.NewJSONType(entity.RiskFactorSnapshot{
			Age:        &age,
			BMI:        &bmi,
			Conditions: []string{"hypertension"},
		}),
		Recommendations: datatypes.JSONSlice[string]{"Schedule regular health checkups"},
	}

	resp := RiskAssessmentToResponse(assessment)
	if resp.AssessmentDate != "2026-08-01" {
		t.Errorf("assessment_date = %q, want 2026-08-01", resp.AssessmentDate)
	}
	if resp.RiskFactors.Age == nil || *resp.RiskFactors.Age != 52 {
		t.Errorf("risk_factors.age = %v, want 52", resp.RiskFactors.Age)
	}
	if len(resp.RiskFactors.Conditions) != 1 {
		t.Errorf("risk_factors.conditions = %v", resp.RiskFactors.Conditions)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("recommendations = %v", resp.Recommendations)
	}
}

func TestRiskAssessmentToResponseNormalizesNilLists(t *testing.T) {
	resp := RiskAssessmentToResponse(&entity.RiskAssessment{ID: uuid.New()})
	if resp.RiskFactors.Conditions == nil {
		t.Error("conditions should be an empty slice, not nil")
	}
	if resp.Recommendations == nil {
		t.Error("recommendations should be an empty slice, not nil")
	}
}

func TestDiseaseImpactToResponse(t *testing.T) {
	analysis := &entity.DiseaseImpactAnalysis{
		ID:               uuid.New(),
		DiseaseName:      "Hypertension",
		CurrentRiskLevel: 65,
		RiskTrend:        entity.TrendWorsening,
		ContributingFactors: datatypes.NewJSONType(map[string]string{
			"stressManagement": "High stress detected",
		}),
		PreventiveActions: datatypes.JSONSlice[string]{"Monitor blood pressure regularly"},
		AnalysisDate:      time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}

	resp := DiseaseImpactToResponse(analysis)
	if resp.RiskTrend != "worsening" {
		t.Errorf("risk_trend = %q, want worsening", resp.RiskTrend)
	}
	if resp.ContributingFactors["stressManagement"] == "" {
		t.Error("contributing factor missing")
	}
	if resp.AnalysisDate != "2026-08-15" {
		t.Errorf("analysis_date = %q, want 2026-08-15", resp.AnalysisDate)
	}
}

func TestChatMessagesToResponsesKeepsOrder(t *testing.T) {
	messages := []entity.ChatMessage{
		{ID: uuid.New(), Role: entity.ChatRoleUser, Content: "hello"},
		{ID: uuid.New(), Role: entity.ChatRoleAssistant, Content: "Hello! I'm here."},
	}

	responses := ChatMessagesToResponses(messages)
	if len(responses) != 2 {
		t.Fatalf("len = %d, want 2", len(responses))
	}
	if responses[0].Role != "user" || responses[1].Role != "assistant" {
		t.Errorf("roles = %q, %q", responses[0].Role, responses[1].Role)
	}
}

func TestMedicalReportToResponse(t *testing.T) {
	report := &entity.MedicalReport{
		ID:         uuid.New(),
		ReportType: "Blood Test",
		ReportDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		FileName:   "cbc.pdf",
		FileURL:    "placeholder-url/cbc.pdf",
		Findings:   datatypes.JSONSlice[string]{"a", "b", "c"},
	}

	resp := MedicalReportToResponse(report)
	if resp.FileURL != "placeholder-url/cbc.pdf" {
		t.Errorf("file_url = %q", resp.FileURL)
	}
	if len(resp.Findings) != 3 {
		t.Errorf("findings = %v, want 3 entries", resp.Findings)
	}
}
