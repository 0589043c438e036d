package report

import (
	"reflect"
	"testing"
)

func TestClassifyBloodTest(t *testing.T) {
	a := Classify("Blood Test")
	if len(a.Findings) != 3 {
		t.Fatalf("expected exactly 3 findings, got %v", a.Findings)
	}
	if len(a.RiskFactors) != 2 || len(a.Recommendations) != 3 {
		t.Fatalf("unexpected bundle shape: %+v", a)
	}
}

func TestClassifyUnrecognizedType(t *testing.T) {
	a := Classify("Foo")
	if len(a.Findings) != 2 {
		t.Fatalf("expected default bundle with 2 findings, got %v", a.Findings)
	}
	if a.Findings[1] != "Manual review recommended" {
		t.Fatalf("expected manual review finding, got %q", a.Findings[1])
	}
}

func TestClassifyKnownTypesWithoutBundlesUseDefault(t *testing.T) {
	for _, typ := range []string{"MRI Scan", "CT Scan", "Ultrasound", "Pathology Report", "Prescription", "Other"} {
		a := Classify(typ)
		if !reflect.DeepEqual(a, Classify("unmapped")) {
			t.Fatalf("type %q: expected default bundle, got %+v", typ, a)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first := Classify("Blood Test")
	second := Classify("Blood Test")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for repeated calls, got %+v vs %+v", first, second)
	}
}
