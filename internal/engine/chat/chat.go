// Package chat maps free-text user messages to canned health guidance via
// keyword matching. Topics are checked in a fixed priority order; the first
// match wins.
package chat

import (
	"fmt"
	"strings"
)

const (
	bloodPressureResponse = "Blood pressure is an important indicator of cardiovascular health. Normal blood pressure is typically around 120/80 mmHg. If your readings are consistently elevated (above 130/80), I recommend consulting with your doctor. In the meantime, maintaining a healthy diet low in sodium, regular exercise, stress management, and adequate sleep can help manage blood pressure levels."

	diabetesResponse = "Blood sugar management is crucial for overall health. Normal fasting blood sugar levels are typically between 70-100 mg/dL. If you're concerned about diabetes risk, maintaining a healthy weight, eating a balanced diet rich in fiber and low in refined sugars, regular physical activity, and monitoring your blood glucose levels are important steps. Always consult with your healthcare provider for personalized advice."

	exerciseResponse = "Regular physical activity is one of the best things you can do for your health. The general recommendation is at least 150 minutes of moderate-intensity aerobic activity or 75 minutes of vigorous-intensity activity per week, plus muscle-strengthening activities on 2 or more days. Start slowly if you're new to exercise, and consider activities you enjoy to make it sustainable. Always consult with your doctor before starting a new exercise program, especially if you have existing health conditions."

	dietResponse = "A balanced diet is fundamental to good health. Focus on whole foods including fruits, vegetables, whole grains, lean proteins, and healthy fats. Limit processed foods, added sugars, and excessive sodium. Stay well-hydrated by drinking plenty of water. Consider the Mediterranean diet as a heart-healthy eating pattern. Remember, everyone's nutritional needs are different, so consulting with a registered dietitian can provide personalized guidance."

	sleepResponse = "Quality sleep is essential for physical and mental health. Most adults need 7-9 hours of sleep per night. To improve sleep quality: maintain a consistent sleep schedule, create a relaxing bedtime routine, keep your bedroom cool and dark, limit screen time before bed, avoid caffeine late in the day, and manage stress. If you're experiencing persistent sleep problems, consult with your healthcare provider."

	stressResponse = "Managing stress is crucial for overall health and wellbeing. Effective stress management techniques include regular exercise, meditation or mindfulness practices, deep breathing exercises, adequate sleep, maintaining social connections, and engaging in hobbies you enjoy. If stress or anxiety is significantly impacting your daily life, please consider speaking with a mental health professional who can provide personalized support."

	thanksResponse = "You're welcome! I'm here to help. Remember, while I can provide general health information, always consult with your healthcare provider for medical advice specific to your situation. Is there anything else you'd like to know?"

	defaultResponse = "Thank you for your question. While I can provide general health information, I recommend discussing specific concerns with your healthcare provider who can give you personalized medical advice based on your individual health history. Is there a general health topic I can help you with, such as nutrition, exercise, sleep, or stress management?"
)

// topic is one keyword set and its canned answer. Greeting responses are
// built per-call because they interpolate the user's name.
type topic struct {
	keywords []string
	response string
}

var topics = []topic{
	{[]string{"blood pressure", "hypertension"}, bloodPressureResponse},
	{[]string{"diabetes", "blood sugar"}, diabetesResponse},
	{[]string{"exercise", "workout"}, exerciseResponse},
	{[]string{"diet", "nutrition", "food"}, dietResponse},
	{[]string{"sleep", "insomnia"}, sleepResponse},
	{[]string{"stress", "anxiety"}, stressResponse},
}

var greetingKeywords = []string{"hello", "hi", "hey", "good morning", "good afternoon"}

// Respond returns the canned answer for the first matching topic, a greeting
// addressed to userName, the thanks acknowledgement, or a generic deflection.
func Respond(message, userName string) string {
	lower := strings.ToLower(message)

	for _, t := range topics {
		if containsAny(lower, t.keywords) {
			return t.response
		}
	}

	if containsAny(lower, greetingKeywords) {
		return fmt.Sprintf("Hello %s! I'm your AI health assistant. I'm here to provide general health information and guidance. How can I help you today? You can ask me about nutrition, exercise, managing common health conditions, or general wellness topics.", userName)
	}

	if strings.Contains(lower, "thank") || strings.Contains(lower, "thanks") {
		return thanksResponse
	}

	return defaultResponse
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
