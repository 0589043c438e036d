package chat

import (
	"strings"
	"testing"
)

func TestRespondBloodPressure(t *testing.T) {
	got := Respond("What about my blood pressure?", "Asha")
	if !strings.Contains(got, "120/80 mmHg") {
		t.Fatalf("expected blood pressure guidance, got %q", got)
	}
	// case-insensitive matching
	if Respond("BLOOD PRESSURE advice please", "Asha") != got {
		t.Fatal("expected identical response regardless of case")
	}
}

func TestRespondTopicPriority(t *testing.T) {
	// mentions both hypertension and stress; blood pressure topic wins
	got := Respond("Does stress cause hypertension?", "Asha")
	if !strings.Contains(got, "Blood pressure is an important indicator") {
		t.Fatalf("expected blood pressure topic to take priority, got %q", got)
	}
}

func TestRespondTopics(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"is my blood sugar normal", "70-100 mg/dL"},
		{"best workout routine?", "150 minutes"},
		{"what food should I eat", "balanced diet"},
		{"I have insomnia", "7-9 hours"},
		{"feeling a lot of anxiety lately", "Managing stress"},
	}
	for _, tt := range tests {
		got := Respond(tt.message, "Asha")
		if !strings.Contains(got, tt.want) {
			t.Fatalf("message %q: expected response containing %q, got %q", tt.message, tt.want, got)
		}
	}
}

func TestRespondGreetingUsesName(t *testing.T) {
	got := Respond("Good morning!", "Asha")
	if !strings.Contains(got, "Hello Asha!") {
		t.Fatalf("expected greeting addressed to user, got %q", got)
	}
}

func TestRespondThanks(t *testing.T) {
	got := Respond("thanks a lot", "Asha")
	if !strings.Contains(got, "You're welcome") {
		t.Fatalf("expected thanks acknowledgement, got %q", got)
	}
}

func TestRespondDefault(t *testing.T) {
	got := Respond("zebra migration patterns", "Asha")
	if !strings.Contains(got, "discussing specific concerns with your healthcare provider") {
		t.Fatalf("expected generic deflection, got %q", got)
	}
}
