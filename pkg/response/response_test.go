package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "created", map[string]string{"id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	resp := decodeBody(t, rec)
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Message != "created" {
		t.Errorf("message = %q, want %q", resp.Message, "created")
	}
	if resp.Error != nil {
		t.Errorf("error = %v, want nil", resp.Error)
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := &Meta{Page: 2, Limit: 10, Total: 35, TotalPages: 4}
	SuccessWithMeta(rec, http.StatusOK, "ok", []string{}, meta)

	resp := decodeBody(t, rec)
	if resp.Meta == nil {
		t.Fatal("meta is nil")
	}
	if resp.Meta.Page != 2 || resp.Meta.TotalPages != 4 {
		t.Errorf("meta = %+v, want page 2 and total_pages 4", resp.Meta)
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "duplicate", nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	resp := decodeBody(t, rec)
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Message != "duplicate" {
		t.Errorf("message = %q, want %q", resp.Message, "duplicate")
	}
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(http.ResponseWriter, string)
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized default", Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"not found default", NotFound, http.StatusNotFound, "Resource not found"},
		{"precondition failed default", PreconditionFailed, http.StatusPreconditionFailed, "Precondition failed"},
		{"internal error default", InternalServerError, http.StatusInternalServerError, "Internal server error"},
		{"bad gateway default", BadGateway, http.StatusBadGateway, "Upstream service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			resp := decodeBody(t, rec)
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestStatusHelpersCustomMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	PreconditionFailed(rec, "Log at least 3 days of health data to generate insights")

	resp := decodeBody(t, rec)
	if resp.Message != "Log at least 3 days of health data to generate insights" {
		t.Errorf("message = %q, custom message not preserved", resp.Message)
	}
}
