// Package alerts serves the static state-by-state health advisory tables.
// Entries are curated reference data, not user-generated content.
package alerts

import "sort"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type HealthAlert struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Source      string   `json:"source"`
	SourceURL   string   `json:"source_url"`
	Date        string   `json:"date"`
}

var stateHealthAlerts = map[string][]HealthAlert{
	"Andhra Pradesh": {
		{
			ID:          "1",
			Title:       "Dengue Outbreak Alert",
			Description: "Increased dengue cases reported in coastal districts. Take preventive measures against mosquito breeding.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/dengue-and-severe-dengue",
			Date:        "2025-01-01",
		},
		{
			ID:          "2",
			Title:       "Seasonal Flu Prevention",
			Description: "Seasonal influenza cases rising. Vaccination recommended for vulnerable populations.",
			Severity:    SeverityMedium,
			Source:      "WHO India",
			SourceURL:   "https://www.who.int/health-topics/influenza-seasonal",
			Date:        "2024-12-28",
		},
	},
	"Arunachal Pradesh": {
		{
			ID:          "3",
			Title:       "Malaria Prevention Campaign",
			Description: "Active malaria transmission in forest areas. Use mosquito nets and prophylaxis.",
			Severity:    SeverityHigh,
			Source:      "NVBDCP",
			SourceURL:   "https://www.who.int/health-topics/malaria",
			Date:        "2025-01-02",
		},
	},
	"Assam": {
		{
			ID:          "4",
			Title:       "Japanese Encephalitis Alert",
			Description: "JE cases detected in rural areas. Vaccination drive underway.",
			Severity:    SeverityHigh,
			Source:      "State Health Services",
			SourceURL:   "https://www.who.int/health-topics/japanese-encephalitis",
			Date:        "2024-12-30",
		},
		{
			ID:          "5",
			Title:       "Flood-Related Health Risks",
			Description: "Water-borne disease precautions advised in flood-affected areas.",
			Severity:    SeverityMedium,
			Source:      "Disaster Management",
			SourceURL:   "https://www.who.int/emergencies",
			Date:        "2024-12-25",
		},
	},
	"Bihar": {
		{
			ID:          "6",
			Title:       "Acute Encephalitis Syndrome",
			Description: "AES cases reported in several districts. Immediate medical attention advised for children with fever and altered consciousness.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/encephalitis",
			Date:        "2025-01-03",
		},
	},
	"Chhattisgarh": {
		{
			ID:          "7",
			Title:       "Malaria Control Advisory",
			Description: "Malaria cases in tribal areas. Distribute bed nets and ensure early diagnosis.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/malaria",
			Date:        "2024-12-29",
		},
	},
	"Delhi": {
		{
			ID:          "8",
			Title:       "Air Quality Health Advisory",
			Description: "Severe air pollution levels. Limit outdoor activity; high-risk groups should wear N95 masks.",
			Severity:    SeverityHigh,
			Source:      "CPCB",
			SourceURL:   "https://www.who.int/health-topics/air-pollution",
			Date:        "2025-01-04",
		},
		{
			ID:          "9",
			Title:       "Winter Respiratory Illness",
			Description: "Rise in respiratory infections during cold wave. Keep vulnerable members indoors.",
			Severity:    SeverityMedium,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/influenza-seasonal",
			Date:        "2024-12-27",
		},
	},
	"Gujarat": {
		{
			ID:          "10",
			Title:       "Heat Wave Preparedness",
			Description: "Early summer heat advisories. Stay hydrated and avoid midday sun exposure.",
			Severity:    SeverityMedium,
			Source:      "IMD",
			SourceURL:   "https://www.who.int/health-topics/heatwaves",
			Date:        "2025-01-02",
		},
	},
	"Karnataka": {
		{
			ID:          "11",
			Title:       "Dengue and Chikungunya Watch",
			Description: "Urban clusters reporting dengue and chikungunya. Eliminate standing water around homes.",
			Severity:    SeverityMedium,
			Source:      "BBMP Health Wing",
			SourceURL:   "https://www.who.int/health-topics/dengue-and-severe-dengue",
			Date:        "2024-12-31",
		},
	},
	"Kerala": {
		{
			ID:          "12",
			Title:       "Leptospirosis Advisory",
			Description: "Post-monsoon leptospirosis risk. Avoid wading in stagnant water; seek doxycycline prophylaxis if exposed.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/news-room/fact-sheets/detail/leptospirosis",
			Date:        "2025-01-01",
		},
	},
	"Maharashtra": {
		{
			ID:          "13",
			Title:       "Measles Vaccination Drive",
			Description: "Measles clusters in urban settlements. Ensure children complete both vaccine doses.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/measles",
			Date:        "2025-01-03",
		},
		{
			ID:          "14",
			Title:       "Seasonal Flu Prevention",
			Description: "Influenza cases rising in metro areas. Vaccination recommended for the elderly.",
			Severity:    SeverityMedium,
			Source:      "WHO India",
			SourceURL:   "https://www.who.int/health-topics/influenza-seasonal",
			Date:        "2024-12-26",
		},
	},
	"Rajasthan": {
		{
			ID:          "15",
			Title:       "Swine Flu Alert",
			Description: "H1N1 cases confirmed in several districts. Report flu-like symptoms early.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/influenza-seasonal",
			Date:        "2025-01-02",
		},
	},
	"Tamil Nadu": {
		{
			ID:          "16",
			Title:       "Water Contamination Warning",
			Description: "Contaminated water supply reported in select wards. Boil drinking water until further notice.",
			Severity:    SeverityMedium,
			Source:      "TWAD Board",
			SourceURL:   "https://www.who.int/health-topics/water-sanitation-and-hygiene-wash",
			Date:        "2024-12-30",
		},
	},
	"Uttar Pradesh": {
		{
			ID:          "17",
			Title:       "Japanese Encephalitis Vaccination",
			Description: "JE vaccination rounds in eastern districts. Cover all children aged 1-15.",
			Severity:    SeverityHigh,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/japanese-encephalitis",
			Date:        "2025-01-01",
		},
	},
	"West Bengal": {
		{
			ID:          "18",
			Title:       "Dengue Surveillance",
			Description: "Post-monsoon dengue surveillance active. Report fever with rash or joint pain promptly.",
			Severity:    SeverityMedium,
			Source:      "State Health Department",
			SourceURL:   "https://www.who.int/health-topics/dengue-and-severe-dengue",
			Date:        "2024-12-29",
		},
	},
}

// ByState returns the alerts for a state, or an empty list for unknown states.
func ByState(state string) []HealthAlert {
	if alerts, ok := stateHealthAlerts[state]; ok {
		return alerts
	}
	return []HealthAlert{}
}

// States returns the covered state names in sorted order.
func States() []string {
	states := make([]string, 0, len(stateHealthAlerts))
	for state := range stateHealthAlerts {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}
