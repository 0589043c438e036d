package impact

import (
	"strings"
	"testing"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sedentaryLogs(n int) []DailyLog {
	logs := make([]DailyLog, n)
	for i := range logs {
		logs[i] = DailyLog{
			SleepHours:      floatPtr(5),
			ExerciseMinutes: intPtr(0),
			StressLevel:     intPtr(9),
		}
	}
	return logs
}

func TestAnalyzeReturnsAllThreeDiseases(t *testing.T) {
	analyses := Analyze(nil, sedentaryLogs(3))
	if len(analyses) != 3 {
		t.Fatalf("expected 3 analyses, got %d", len(analyses))
	}
	want := []string{DiseaseCardiovascular, DiseaseType2Diabetes, DiseaseHypertension}
	for i, name := range want {
		if analyses[i].DiseaseName != name {
			t.Fatalf("expected %s at index %d, got %s", name, i, analyses[i].DiseaseName)
		}
	}
}

func TestAnalyzeSedentaryHighStress(t *testing.T) {
	// 3 days, exercise=0, stress=9, sleep=5
	analyses := Analyze(nil, sedentaryLogs(3))

	cardio := analyses[0]
	// 30 + 15 (exercise<30) + 10 (stress>6) + 10 (sleep<7)
	if cardio.RiskLevel != 65 {
		t.Fatalf("cardiovascular: expected risk 65, got %d", cardio.RiskLevel)
	}
	if cardio.Trend != TrendWorsening {
		t.Fatalf("cardiovascular: expected worsening trend, got %s", cardio.Trend)
	}

	diabetes := analyses[1]
	// 30 + 20 (exercise<20) + 15 (sleep<6)
	if diabetes.RiskLevel != 65 {
		t.Fatalf("diabetes: expected risk 65, got %d", diabetes.RiskLevel)
	}
	if diabetes.Trend != TrendStable {
		t.Fatalf("diabetes: expected stable trend, got %s", diabetes.Trend)
	}

	hypertension := analyses[2]
	// 30 + 20 (stress>7) + 15 (exercise<25)
	if hypertension.RiskLevel != 65 {
		t.Fatalf("hypertension: expected risk 65, got %d", hypertension.RiskLevel)
	}
	if hypertension.Trend != TrendWorsening {
		t.Fatalf("hypertension: expected worsening trend, got %s", hypertension.Trend)
	}
}

func TestAnalyzeHealthyHabits(t *testing.T) {
	logs := make([]DailyLog, 7)
	for i := range logs {
		logs[i] = DailyLog{
			SleepHours:      floatPtr(8),
			ExerciseMinutes: intPtr(45),
			StressLevel:     intPtr(3),
		}
	}

	analyses := Analyze(nil, logs)

	for _, a := range analyses {
		if a.RiskLevel != 30 {
			t.Fatalf("%s: expected base risk 30, got %d", a.DiseaseName, a.RiskLevel)
		}
		if a.Trend != TrendImproving {
			t.Fatalf("%s: expected improving trend, got %s", a.DiseaseName, a.Trend)
		}
	}
}

func TestAveragesUsesMostRecentSeven(t *testing.T) {
	logs := make([]DailyLog, 10)
	for i := range logs {
		// first 3 are heavy exercise days that must fall outside the window
		minutes := 0
		if i < 3 {
			minutes = 300
		}
		logs[i] = DailyLog{ExerciseMinutes: intPtr(minutes)}
	}

	h := Averages(logs)
	if h.AvgExercise != 0 {
		t.Fatalf("expected only the last 7 logs averaged, got avg exercise %v", h.AvgExercise)
	}
}

func TestAveragesTreatsMissingFieldsAsZero(t *testing.T) {
	logs := []DailyLog{
		{SleepHours: floatPtr(8)},
		{},
		{},
		{},
	}
	h := Averages(logs)
	if h.AvgSleep != 2 {
		t.Fatalf("expected sparse logs to bias average toward zero, got %v", h.AvgSleep)
	}
}

func TestAveragesEmptyLogs(t *testing.T) {
	h := Averages(nil)
	if h.AvgSleep != 0 || h.AvgExercise != 0 || h.AvgStress != 0 {
		t.Fatalf("expected zero habits for no logs, got %+v", h)
	}
}

func TestContributingFactorKeys(t *testing.T) {
	analyses := Analyze([]string{"Diabetes"}, sedentaryLogs(3))

	cardio := analyses[0].ContributingFactors
	for _, key := range []string{"exercise", "stress", "sleep"} {
		if _, ok := cardio[key]; !ok {
			t.Fatalf("cardiovascular factors missing key %q: %v", key, cardio)
		}
	}

	diabetes := analyses[1].ContributingFactors
	if !strings.Contains(diabetes["familyHistory"], "Family history") {
		t.Fatalf("expected family history factor for recorded Diabetes condition, got %q", diabetes["familyHistory"])
	}

	hypertension := analyses[2].ContributingFactors
	if hypertension["lifestyle"] == "" {
		t.Fatalf("expected constant lifestyle factor, got %v", hypertension)
	}
}

func TestAdviceListsAreFixed(t *testing.T) {
	a := Analyze(nil, sedentaryLogs(3))
	b := Analyze([]string{"Hypertension"}, nil)
	for i := range a {
		if len(a[i].PreventiveActions) != len(b[i].PreventiveActions) ||
			a[i].PreventiveActions[0] != b[i].PreventiveActions[0] {
			t.Fatalf("%s: advice lists must not depend on user data", a[i].DiseaseName)
		}
		if len(a[i].PreventiveActions) != 4 || len(a[i].Precautions) != 4 || len(a[i].LifestyleRemedies) != 4 {
			t.Fatalf("%s: expected 4 entries per advice list", a[i].DiseaseName)
		}
	}
}
