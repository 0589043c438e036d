// Package report maps a medical report type to a canned findings bundle.
// No file content is inspected; classification is a pure table lookup.
package report

// Analysis is the classifier output for one report.
type Analysis struct {
	Findings        []string
	RiskFactors     []string
	Recommendations []string
}

// ReportTypes lists the upload types offered to the user. Types without a
// dedicated bundle fall through to the default one.
var ReportTypes = []string{
	"Blood Test",
	"X-Ray",
	"MRI Scan",
	"CT Scan",
	"Ultrasound",
	"ECG",
	"Pathology Report",
	"Prescription",
	"Other",
}

var bundles = map[string]Analysis{
	"Blood Test": {
		Findings: []string{
			"Hemoglobin levels within normal range",
			"Glucose levels slightly elevated",
			"Cholesterol levels borderline high",
		},
		RiskFactors: []string{
			"Elevated glucose may indicate prediabetes",
			"High cholesterol increases cardiovascular risk",
		},
		Recommendations: []string{
			"Consult with your doctor about glucose management",
			"Consider dietary modifications to reduce cholesterol",
			"Increase physical activity to 150 minutes per week",
		},
	},
	"X-Ray": {
		Findings: []string{
			"Clear lung fields",
			"No evidence of fractures",
			"Normal cardiac silhouette",
		},
		RiskFactors: []string{},
		Recommendations: []string{
			"Continue regular health monitoring",
			"Maintain good respiratory hygiene",
		},
	},
	"ECG": {
		Findings: []string{
			"Normal sinus rhythm",
			"Heart rate: 72 bpm",
			"No ST segment changes",
		},
		RiskFactors: []string{},
		Recommendations: []string{
			"Heart function appears normal",
			"Continue healthy lifestyle habits",
			"Monitor blood pressure regularly",
		},
	},
}

var defaultBundle = Analysis{
	Findings: []string{
		"Report uploaded successfully",
		"Manual review recommended",
	},
	RiskFactors: []string{
		"Consult with healthcare provider for detailed interpretation",
	},
	Recommendations: []string{
		"Discuss findings with your doctor",
		"Keep records organized for future reference",
	},
}

// Classify returns the canned bundle for the report type, or the default
// bundle for unrecognized types.
func Classify(reportType string) Analysis {
	if bundle, ok := bundles[reportType]; ok {
		return bundle
	}
	return defaultBundle
}
