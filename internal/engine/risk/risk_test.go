package risk

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func fixedRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestScoreEmptyProfileIsBase(t *testing.T) {
	a := Score(Input{Now: time.Now()}, fixedRNG())
	if a.Overall != 20 {
		t.Fatalf("expected base score 20, got %d", a.Overall)
	}
	if a.Factors.Age != nil || a.Factors.BMI != nil {
		t.Fatalf("expected empty factor snapshot, got %+v", a.Factors)
	}
	if len(a.Recommendations) != 2 {
		t.Fatalf("expected only the two constant recommendations, got %v", a.Recommendations)
	}
}

func TestScoreElderlyObeseWithConditions(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dob := now.AddDate(-70, -6, 0)
	// 178cm / 101.4kg gives BMI ~32
	a := Score(Input{
		DateOfBirth: &dob,
		HeightCm:    floatPtr(178),
		WeightKg:    floatPtr(101.4),
		Conditions:  []string{"Hypertension", "Asthma"},
		Now:         now,
	}, fixedRNG())

	// 20 base + 20 age + 15 BMI + 10 conditions
	if a.Overall != 65 {
		t.Fatalf("expected overall 65, got %d", a.Overall)
	}
	if a.Factors.Age == nil || *a.Factors.Age != 70 {
		t.Fatalf("expected age 70 in snapshot, got %v", a.Factors.Age)
	}
	if a.Factors.BMI == nil || *a.Factors.BMI < 31 || *a.Factors.BMI > 33 {
		t.Fatalf("expected BMI near 32 in snapshot, got %v", a.Factors.BMI)
	}
}

func TestScoreAgeBands(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		years int
		want  int
	}{
		{30, 20},
		{45, 30},
		{55, 35},
		{70, 40},
	}
	for _, tt := range tests {
		dob := now.AddDate(-tt.years, 0, 0)
		a := Score(Input{DateOfBirth: &dob, Now: now}, fixedRNG())
		if a.Overall != tt.want {
			t.Fatalf("age %d: expected overall %d, got %d", tt.years, tt.want, a.Overall)
		}
	}
}

func TestScoreBloodPressureAverages(t *testing.T) {
	base := Input{Now: time.Now()}

	high := base
	high.Records = []Record{{Systolic: intPtr(150)}, {Systolic: intPtr(145)}, {}}
	if a := Score(high, fixedRNG()); a.Overall != 35 {
		t.Fatalf("avg systolic >140: expected 35, got %d", a.Overall)
	}

	elevated := base
	elevated.Records = []Record{{Systolic: intPtr(132)}, {Systolic: intPtr(136)}}
	if a := Score(elevated, fixedRNG()); a.Overall != 30 {
		t.Fatalf("avg systolic >130: expected 30, got %d", a.Overall)
	}

	// Records without systolic readings contribute nothing
	none := base
	none.Records = []Record{{}, {}}
	if a := Score(none, fixedRNG()); a.Overall != 20 {
		t.Fatalf("no systolic readings: expected 20, got %d", a.Overall)
	}
}

func TestScoreCategoryRisksStayInRange(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dob := now.AddDate(-80, 0, 0)
	inputs := []Input{
		{Now: now},
		{DateOfBirth: &dob, HeightCm: floatPtr(160), WeightKg: floatPtr(120),
			Conditions: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
			Records:    []Record{{Systolic: intPtr(180)}}, Now: now},
	}
	for seed := int64(0); seed < 50; seed++ {
		for _, in := range inputs {
			a := Score(in, rand.New(rand.NewSource(seed)))
			for name, v := range map[string]int{
				"cardiovascular": a.Cardiovascular,
				"diabetes":       a.Diabetes,
				"respiratory":    a.Respiratory,
				"cancer":         a.Cancer,
			} {
				if v < 0 || v > 100 {
					t.Fatalf("seed %d: %s risk %d out of range", seed, name, v)
				}
			}
		}
	}
}

func TestScoreReproducibleWithSameSeed(t *testing.T) {
	in := Input{Conditions: []string{"Diabetes"}, Now: time.Now()}
	a := Score(in, rand.New(rand.NewSource(42)))
	b := Score(in, rand.New(rand.NewSource(42)))
	if a.Cardiovascular != b.Cardiovascular || a.Cancer != b.Cancer {
		t.Fatalf("expected identical assessments for same seed, got %+v vs %+v", a, b)
	}
}

func TestRecommendationsOrderAndTail(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dob := now.AddDate(-70, 0, 0)
	a := Score(Input{
		DateOfBirth: &dob,
		HeightCm:    floatPtr(170),
		WeightKg:    floatPtr(95),
		Conditions:  []string{"Hypertension", "Diabetes", "Asthma"},
		Records:     []Record{{Systolic: intPtr(160)}},
		Now:         now,
	}, fixedRNG())

	if len(a.Recommendations) < 3 {
		t.Fatalf("expected conditional plus constant recommendations, got %v", a.Recommendations)
	}
	if !strings.Contains(a.Recommendations[0], "check-up") {
		t.Fatalf("expected check-up recommendation first, got %q", a.Recommendations[0])
	}
	n := len(a.Recommendations)
	if !strings.Contains(a.Recommendations[n-2], "hydrated") || !strings.Contains(a.Recommendations[n-1], "stress management") {
		t.Fatalf("expected constant tail recommendations, got %v", a.Recommendations[n-2:])
	}
}
