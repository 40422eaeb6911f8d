package scheduling

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/httperr"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httperr.Handler(zerolog.Nop())
	api := e.Group("/api")

	availabilitySvc := NewAvailabilityService(newMockAvailabilityStore(), doctorLookup(20))
	appointmentSvc := newTestAppointmentService(newMockAppointmentStore())
	RegisterRoutes(api, availabilitySvc, appointmentSvc)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// apptWindow renders a half-hour slot tomorrow as RFC 3339 timestamps.
func apptWindow() (string, string) {
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	return start.Format(time.RFC3339), start.Add(30 * time.Minute).Format(time.RFC3339)
}

func TestPostAppointment(t *testing.T) {
	e := newTestServer()

	start, end := apptWindow()
	rec := doJSON(e, http.MethodPost, "/api/appointments", fmt.Sprintf(`{
		"patient": {"id": 10},
		"doctor": {"id": 20},
		"startTime": %q,
		"endTime": %q,
		"reason": "checkup"
	}`, start, end))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var a Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == 0 || a.Status != StatusScheduled {
		t.Errorf("unexpected appointment: %+v", a)
	}
}

func TestPostAppointment_EndPrecedesStart(t *testing.T) {
	e := newTestServer()

	start, _ := apptWindow()
	earlier := time.Now().Add(23 * time.Hour).UTC().Format(time.RFC3339)
	rec := doJSON(e, http.MethodPost, "/api/appointments", fmt.Sprintf(`{
		"patient": {"id": 10},
		"doctor": {"id": 20},
		"startTime": %q,
		"endTime": %q,
		"reason": "checkup"
	}`, start, earlier))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body httperr.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.ValidationErrors["endTime"] != "must not precede startTime" {
		t.Errorf("unexpected validationErrors: %v", body.ValidationErrors)
	}
}

func TestPostAppointment_PastStart(t *testing.T) {
	e := newTestServer()

	start := time.Now().Add(-48 * time.Hour).UTC()
	rec := doJSON(e, http.MethodPost, "/api/appointments", fmt.Sprintf(`{
		"patient": {"id": 10},
		"doctor": {"id": 20},
		"startTime": %q,
		"endTime": %q,
		"reason": "checkup"
	}`, start.Format(time.RFC3339), start.Add(30*time.Minute).Format(time.RFC3339)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body httperr.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.ValidationErrors["startTime"] != "must be in the present or future" {
		t.Errorf("unexpected validationErrors: %v", body.ValidationErrors)
	}
}

func TestPostAppointment_DanglingPatient(t *testing.T) {
	e := newTestServer()

	start, end := apptWindow()
	rec := doJSON(e, http.MethodPost, "/api/appointments", fmt.Sprintf(`{
		"patient": {"id": 999},
		"doctor": {"id": 20},
		"startTime": %q,
		"endTime": %q,
		"reason": "checkup"
	}`, start, end))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body httperr.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Message != "Patient not found with id 999" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestGetAppointment_InvalidID(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodGet, "/api/appointments/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed id, got %d", rec.Code)
	}
}

func TestDeleteAppointment_Missing(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodDelete, "/api/appointments/77", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPostAvailability(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/doctor-availabilities", `{
		"doctor": {"id": 20},
		"dayOfWeek": "MONDAY",
		"startTime": "09:00",
		"endTime": "17:00"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPostAvailability_MissingDoctor(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/doctor-availabilities", `{
		"dayOfWeek": "MONDAY",
		"startTime": "09:00",
		"endTime": "17:00"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body httperr.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.ValidationErrors["doctor"] != "required" {
		t.Errorf("unexpected validationErrors: %v", body.ValidationErrors)
	}
}
