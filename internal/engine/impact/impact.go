// Package impact derives per-disease risk insights from recent daily habit
// logs. Output is deterministic: personalization is limited to the risk level,
// trend, and contributing-factor text; the advice lists are fixed per disease.
package impact

// Diseases analyzed on every run, in output order.
const (
	DiseaseCardiovascular = "Cardiovascular Disease"
	DiseaseType2Diabetes  = "Type 2 Diabetes"
	DiseaseHypertension   = "Hypertension"
)

// Trend values match the persisted risk_trend column.
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
)

// DailyLog is the plain-data view of one daily habit log. Fields the user did
// not fill are nil and count as zero in the averages; with sparse logs this
// biases averages toward zero, which the rule thresholds expect.
type DailyLog struct {
	SleepHours      *float64
	ExerciseMinutes *int
	StressLevel     *int
}

// Analysis is one disease's insight.
type Analysis struct {
	DiseaseName         string
	RiskLevel           int
	Trend               string
	ContributingFactors map[string]string
	PreventiveActions   []string
	Precautions         []string
	LifestyleRemedies   []string
}

const baseRiskLevel = 30

// Habits holds the averages the rules evaluate.
type Habits struct {
	AvgSleep    float64
	AvgExercise float64
	AvgStress   float64
}

// Averages computes arithmetic means over the most recent 7 logs (fewer if
// unavailable), treating missing fields as 0.
func Averages(logs []DailyLog) Habits {
	recent := logs
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	if len(recent) == 0 {
		return Habits{}
	}

	var sleep, exercise, stress float64
	for _, log := range recent {
		if log.SleepHours != nil {
			sleep += *log.SleepHours
		}
		if log.ExerciseMinutes != nil {
			exercise += float64(*log.ExerciseMinutes)
		}
		if log.StressLevel != nil {
			stress += float64(*log.StressLevel)
		}
	}

	n := float64(len(recent))
	return Habits{
		AvgSleep:    sleep / n,
		AvgExercise: exercise / n,
		AvgStress:   stress / n,
	}
}

// Analyze produces one analysis per tracked disease from the user's recorded
// medical conditions and recent daily logs. Callers enforce any minimum log
// count; the engine itself analyzes whatever it is given.
func Analyze(conditions []string, logs []DailyLog) []Analysis {
	habits := Averages(logs)
	return []Analysis{
		analyzeCardiovascular(habits),
		analyzeDiabetes(habits, conditions),
		analyzeHypertension(habits),
	}
}

func analyzeCardiovascular(h Habits) Analysis {
	risk := baseRiskLevel
	if h.AvgExercise < 30 {
		risk += 15
	}
	if h.AvgStress > 6 {
		risk += 10
	}
	if h.AvgSleep < 7 {
		risk += 10
	}

	factors := map[string]string{
		"exercise": pick(h.AvgExercise < 30,
			"Low physical activity increases heart disease risk",
			"Good activity level"),
		"stress": pick(h.AvgStress > 6,
			"High stress levels are damaging your cardiovascular health",
			"Stress managed well"),
		"sleep": pick(h.AvgSleep < 7,
			"Insufficient sleep increases inflammation and heart strain",
			"Healthy sleep duration"),
	}

	trend := TrendStable
	if h.AvgExercise > 30 && h.AvgStress < 7 {
		trend = TrendImproving
	} else if h.AvgExercise < 20 {
		trend = TrendWorsening
	}

	return Analysis{
		DiseaseName:         DiseaseCardiovascular,
		RiskLevel:           clampRisk(risk),
		Trend:               trend,
		ContributingFactors: factors,
		PreventiveActions: []string{
			"Aim for 150 minutes of moderate aerobic activity per week",
			"Reduce sodium intake to below 2,300mg per day",
			"Monitor blood pressure regularly",
			"Include omega-3 rich foods in your diet",
		},
		Precautions: []string{
			"Avoid smoking and limit alcohol consumption",
			"Manage cholesterol levels through diet",
			"Watch for warning signs: chest pain, shortness of breath",
			"Stay up to date with cardiac screenings if family history exists",
		},
		LifestyleRemedies: []string{
			"Practice deep breathing exercises for 10 minutes daily to reduce stress",
			"Walk briskly for 30 minutes, 5 days per week",
			"Eat a Mediterranean-style diet rich in vegetables, fruits, whole grains, and olive oil",
			"Maintain a healthy weight (BMI between 18.5-24.9)",
		},
	}
}

func analyzeDiabetes(h Habits, conditions []string) Analysis {
	risk := baseRiskLevel
	if h.AvgExercise < 20 {
		risk += 20
	}
	if h.AvgSleep < 6 {
		risk += 15
	}

	factors := map[string]string{
		"exercise": pick(h.AvgExercise < 20,
			"Sedentary lifestyle increases insulin resistance",
			"Physical activity helps regulate blood sugar"),
		"sleep": pick(h.AvgSleep < 6,
			"Poor sleep disrupts glucose metabolism and increases diabetes risk",
			"Adequate sleep supports metabolic health"),
		"familyHistory": pick(hasCondition(conditions, "Diabetes"),
			"Family history significantly increases your risk",
			"No known family history"),
	}

	trend := TrendStable
	if h.AvgExercise > 30 && h.AvgSleep > 7 {
		trend = TrendImproving
	}

	return Analysis{
		DiseaseName:         DiseaseType2Diabetes,
		RiskLevel:           clampRisk(risk),
		Trend:               trend,
		ContributingFactors: factors,
		PreventiveActions: []string{
			"Maintain blood sugar levels within target range (fasting: 80-130 mg/dL)",
			"Get HbA1c tested every 3-6 months",
			"Limit refined carbohydrates and sugary drinks",
			"Maintain healthy body weight",
		},
		Precautions: []string{
			"Monitor for symptoms: increased thirst, frequent urination, fatigue",
			"Check feet daily for cuts or infections",
			"Avoid prolonged sitting - move every 30 minutes",
			"Be cautious with high glycemic index foods",
		},
		LifestyleRemedies: []string{
			"Follow a low-glycemic diet with complex carbohydrates, lean proteins, and fiber",
			"Exercise at least 150 minutes per week to improve insulin sensitivity",
			"Stay hydrated with 8-10 glasses of water daily",
			"Manage portion sizes and eat regular meals to stabilize blood sugar",
		},
	}
}

func analyzeHypertension(h Habits) Analysis {
	risk := baseRiskLevel
	if h.AvgStress > 7 {
		risk += 20
	}
	if h.AvgExercise < 25 {
		risk += 15
	}

	factors := map[string]string{
		"stress": pick(h.AvgStress > 7,
			"Your stress levels are significantly increasing your blood pressure and hypertension risk",
			"Stress levels are manageable"),
		"exercise": pick(h.AvgExercise < 25,
			"Lack of regular activity contributes to high blood pressure",
			"Good activity level"),
		"lifestyle": "Daily habits play a crucial role in blood pressure management",
	}

	trend := TrendStable
	if h.AvgStress > 8 {
		trend = TrendWorsening
	} else if h.AvgStress < 5 && h.AvgExercise > 30 {
		trend = TrendImproving
	}

	return Analysis{
		DiseaseName:         DiseaseHypertension,
		RiskLevel:           clampRisk(risk),
		Trend:               trend,
		ContributingFactors: factors,
		PreventiveActions: []string{
			"Monitor blood pressure at home regularly (target: below 120/80 mmHg)",
			"Reduce sodium intake to 1,500mg or less per day",
			"Limit caffeine consumption",
			"Maintain healthy body weight",
		},
		Precautions: []string{
			"Avoid foods high in sodium: processed foods, canned soups, deli meats",
			"Limit alcohol to moderate levels",
			"Be aware of symptoms: severe headaches, vision problems, chest pain",
			"Don't skip medications if prescribed",
		},
		LifestyleRemedies: []string{
			"Practice stress-reduction techniques: meditation, yoga, progressive muscle relaxation",
			"Follow the DASH diet emphasizing fruits, vegetables, whole grains, and low-fat dairy",
			"Get 7-9 hours of quality sleep each night",
			"Engage in regular aerobic exercise: brisk walking, cycling, swimming",
		},
	}
}

func pick(breached bool, breachedText, okText string) string {
	if breached {
		return breachedText
	}
	return okText
}

func hasCondition(conditions []string, name string) bool {
	for _, c := range conditions {
		if c == name {
			return true
		}
	}
	return false
}

func clampRisk(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
