package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candidatehub/interview-availability/internal/domain"
	"github.com/candidatehub/interview-availability/internal/service/availability"
)

type fakeResolver struct {
	result *availability.Result
	err    error

	gotTemplateID int64
	gotNow        time.Time
	calls         int
}

func (f *fakeResolver) ResolveTemplate(_ context.Context, templateID int64, now time.Time) (*availability.Result, error) {
	f.calls++
	f.gotTemplateID = templateID
	f.gotNow = now
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestRouter(resolver availabilityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(resolver)
	r.GET("/api/v1/interviews/:id/availability", h.HandleAvailability)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAvailability_Success(t *testing.T) {
	start := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	resolver := &fakeResolver{
		result: &availability.Result{
			Template: &domain.InterviewTemplate{
				ID:              42,
				Name:            "System Design",
				DurationMinutes: 60,
				Interviewers: []domain.Interviewer{
					{ID: 10, Name: "Ada"},
					{ID: 11, Name: "Lin"},
				},
			},
			CandidateCount: 80,
			Slots: []domain.TimeInterval{
				{Start: start, End: start.Add(60 * time.Minute)},
				{Start: start.Add(30 * time.Minute), End: start.Add(90 * time.Minute)},
			},
		},
	}

	w := doRequest(t, newTestRouter(resolver), "/api/v1/interviews/42/availability")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if resolver.gotTemplateID != 42 {
		t.Errorf("resolved template id = %d, want 42", resolver.gotTemplateID)
	}

	var resp availabilityResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.InterviewID != 42 || resp.Name != "System Design" || resp.DurationMinutes != 60 {
		t.Errorf("response header fields = %+v", resp)
	}
	if len(resp.Interviewers) != 2 || resp.Interviewers[0].ID != 10 || resp.Interviewers[1].Name != "Lin" {
		t.Errorf("interviewers = %+v", resp.Interviewers)
	}
	if len(resp.AvailableSlots) != 2 {
		t.Fatalf("len(availableSlots) = %d, want 2", len(resp.AvailableSlots))
	}
	if resp.AvailableSlots[0].Start != "2025-03-04T09:00:00Z" || resp.AvailableSlots[0].End != "2025-03-04T10:00:00Z" {
		t.Errorf("first slot = %+v", resp.AvailableSlots[0])
	}
}

func TestHandleAvailability_EmptySlotsIsOK(t *testing.T) {
	resolver := &fakeResolver{
		result: &availability.Result{
			Template: &domain.InterviewTemplate{ID: 7, Name: "Intro", DurationMinutes: 30},
			Slots:    nil,
		},
	}

	w := doRequest(t, newTestRouter(resolver), "/api/v1/interviews/7/availability")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp availabilityResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.AvailableSlots == nil || len(resp.AvailableSlots) != 0 {
		t.Errorf("availableSlots = %v, want empty array", resp.AvailableSlots)
	}
}

func TestHandleAvailability_VirtualTime(t *testing.T) {
	resolver := &fakeResolver{
		result: &availability.Result{
			Template: &domain.InterviewTemplate{ID: 1, Name: "Intro", DurationMinutes: 30},
		},
	}

	w := doRequest(t, newTestRouter(resolver), "/api/v1/interviews/1/availability?from=2025-03-03T08:10:00Z")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	want := time.Date(2025, 3, 3, 8, 10, 0, 0, time.UTC)
	if !resolver.gotNow.Equal(want) {
		t.Errorf("resolver now = %v, want %v", resolver.gotNow, want)
	}
}

func TestHandleAvailability_InvalidFromTime(t *testing.T) {
	resolver := &fakeResolver{}

	w := doRequest(t, newTestRouter(resolver), "/api/v1/interviews/1/availability?from=2025-03-03T08:10:00")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if resolver.calls != 0 {
		t.Errorf("resolver calls = %d, want 0", resolver.calls)
	}
}

func TestHandleAvailability_InvalidID(t *testing.T) {
	resolver := &fakeResolver{}

	for _, path := range []string{
		"/api/v1/interviews/abc/availability",
		"/api/v1/interviews/0/availability",
		"/api/v1/interviews/-3/availability",
	} {
		w := doRequest(t, newTestRouter(resolver), path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", path, w.Code, http.StatusBadRequest)
		}
	}
	if resolver.calls != 0 {
		t.Errorf("resolver calls = %d, want 0", resolver.calls)
	}
}

func TestHandleAvailability_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"template not found", domain.ErrTemplateNotFound, http.StatusNotFound, "not_found"},
		{"invalid duration", domain.ErrInvalidDuration, http.StatusUnprocessableEntity, "invalid_duration"},
		{"provider unavailable", domain.ErrProviderUnavailable, http.StatusBadGateway, "upstream_error"},
		{"malformed busy data", domain.ErrMalformedBusyData, http.StatusBadGateway, "upstream_error"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{err: tt.err}

			w := doRequest(t, newTestRouter(resolver), "/api/v1/interviews/5/availability")

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error response: %v", err)
			}
			if resp.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error, tt.wantCode)
			}
		})
	}
}
