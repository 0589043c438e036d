// Package risk computes heuristic health risk assessments from a patient
// profile and recent vitals. Scoring is pure integer arithmetic on a 0-100
// scale; callers own persistence.
package risk

import (
	"math/rand"
	"time"
)

// Record carries the vitals fields the scorer reads from one health record.
// Records without a systolic reading are ignored by the blood pressure factor.
type Record struct {
	Systolic *int
}

// Input is the plain-data view of a profile plus the most recent records
// (most-recent-first, at most 10 by convention of the caller).
type Input struct {
	DateOfBirth *time.Time
	HeightCm    *float64
	WeightKg    *float64
	Conditions  []string
	Records     []Record
	Now         time.Time
}

// Snapshot captures the derived factors the score was based on.
type Snapshot struct {
	Age        *int
	BMI        *float64
	Conditions []string
}

// Assessment is the scorer output. Category scores track the overall score
// with bounded random jitter, biased downward for respiratory and cancer.
type Assessment struct {
	Overall         int
	Cardiovascular  int
	Diabetes        int
	Respiratory     int
	Cancer          int
	Factors         Snapshot
	Recommendations []string
}

const baseScore = 20

// Score computes a risk assessment. The rng drives only the category jitter;
// fix the seed to make assessments reproducible.
func Score(in Input, rng *rand.Rand) Assessment {
	overall := baseScore

	var age *int
	if in.DateOfBirth != nil {
		years := int(in.Now.Sub(*in.DateOfBirth).Hours() / (365.25 * 24))
		age = &years
		switch {
		case years > 65:
			overall += 20
		case years > 50:
			overall += 15
		case years > 40:
			overall += 10
		}
	}

	bmi := computeBMI(in.HeightCm, in.WeightKg)
	if bmi != nil {
		if *bmi > 30 {
			overall += 15
		} else if *bmi > 25 {
			overall += 10
		}
	}

	overall += 5 * len(in.Conditions)

	if avg, ok := averageSystolic(in.Records); ok {
		if avg > 140 {
			overall += 15
		} else if avg > 130 {
			overall += 10
		}
	}

	overall = min(overall, 100)

	cardiovascular := clamp(overall + rng.Intn(10) - 5)
	diabetes := clamp(overall + rng.Intn(15) - 10)
	respiratory := clamp(overall + rng.Intn(10) - 15)
	cancer := clamp(overall + rng.Intn(10) - 20)

	recommendations := buildRecommendations(overall, cardiovascular, diabetes, bmi)

	conditions := in.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	return Assessment{
		Overall:         overall,
		Cardiovascular:  cardiovascular,
		Diabetes:        diabetes,
		Respiratory:     respiratory,
		Cancer:          cancer,
		Factors:         Snapshot{Age: age, BMI: bmi, Conditions: conditions},
		Recommendations: recommendations,
	}
}

func computeBMI(heightCm, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := *weightKg / (heightM * heightM)
	return &bmi
}

func averageSystolic(records []Record) (float64, bool) {
	sum, count := 0, 0
	for _, r := range records {
		if r.Systolic != nil {
			sum += *r.Systolic
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// buildRecommendations appends advice in a fixed conditional order followed by
// two constant entries. Duplicates are intentionally not filtered.
func buildRecommendations(overall, cardiovascular, diabetes int, bmi *float64) []string {
	recommendations := []string{}
	if overall > 50 {
		recommendations = append(recommendations, "Schedule a comprehensive health check-up with your physician")
	}
	if cardiovascular > 60 {
		recommendations = append(recommendations, "Monitor your blood pressure regularly and consult a cardiologist")
	}
	if diabetes > 60 {
		recommendations = append(recommendations, "Consider a glucose tolerance test and dietary modifications")
	}
	if bmi != nil && *bmi > 25 {
		recommendations = append(recommendations, "Maintain a healthy weight through balanced diet and regular exercise")
	}
	recommendations = append(recommendations,
		"Stay hydrated and get at least 7-8 hours of sleep daily",
		"Consider stress management techniques such as meditation or yoga",
	)
	return recommendations
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
