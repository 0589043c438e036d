package validator

import "testing"

type sampleRequest struct {
	Email       string  `validate:"required,email"`
	LogDate     string  `validate:"required,datetime=2006-01-02"`
	SleepHours  float64 `validate:"gte=0,lte=24"`
	StressLevel int     `validate:"omitempty,gte=1,lte=10"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:       "patient@example.com",
		LogDate:     "2025-06-01",
		SleepHours:  7.5,
		StressLevel: 4,
	})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateFormatsErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:       "not-an-email",
		LogDate:     "01/06/2025",
		SleepHours:  30,
		StressLevel: 12,
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := cv.FormatValidationErrors(err)
	if formatted["Email"] == "" {
		t.Fatalf("expected email error, got %v", formatted)
	}
	if formatted["LogDate"] == "" {
		t.Fatalf("expected log date format error, got %v", formatted)
	}
	if formatted["SleepHours"] == "" {
		t.Fatalf("expected sleep hours range error, got %v", formatted)
	}
}
