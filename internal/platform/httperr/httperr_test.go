package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/entity"
)

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, Body) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = Handler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body Body
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the uniform error shape: %v", err)
	}
	return rec, body
}

func TestHandlerNotFound(t *testing.T) {
	rec, body := serve(t, entity.NewNotFound(entity.KindPatient, 42))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if body.Status != http.StatusNotFound || body.Error != "Not Found" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Message != "Patient not found with id 42" {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.ValidationErrors != nil {
		t.Error("not-found response must not carry validationErrors")
	}
	if body.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestHandlerValidation(t *testing.T) {
	rec, body := serve(t, entity.NewFieldError("endTime", "must not precede startTime"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if body.Status != http.StatusBadRequest || body.Error != "Bad Request" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.ValidationErrors["endTime"] != "must not precede startTime" {
		t.Errorf("unexpected validationErrors: %v", body.ValidationErrors)
	}
	if body.Message != "" {
		t.Error("validation response must not carry message")
	}
}

func TestHandlerEchoErrorPassThrough(t *testing.T) {
	rec, body := serve(t, echo.NewHTTPError(http.StatusBadRequest, "invalid id"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if body.Message != "invalid id" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestHandlerUnknownError(t *testing.T) {
	rec, body := serve(t, errors.New("pool exhausted"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if body.Message != "internal server error" {
		t.Errorf("internal details must be withheld, got %q", body.Message)
	}
}
