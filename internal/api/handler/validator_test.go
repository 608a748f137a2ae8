package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestValidator_ReportsWireFieldNames(t *testing.T) {
	ev := NewValidator()

	req := createUserRequest{Name: "", Classes: "CSC 430"}
	err := ev.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(ve.Errors))
	}
	if ve.Errors[0].Field != "name" {
		t.Fatalf("expected wire name %q, got %q", "name", ve.Errors[0].Field)
	}
}

func TestValidator_AccumulatesAcrossFields(t *testing.T) {
	ev := NewValidator()

	// Both fields fail; Classes fails two rules (required, min) but only the
	// first is reported: one entry per failing field, in declaration order.
	req := createUserRequest{Name: "", Classes: ""}
	err := ev.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if ve.Errors[0].Field != "name" || ve.Errors[1].Field != "Classes" {
		t.Fatalf("unexpected order: %v", ve.Errors)
	}
	if !strings.Contains(ve.Errors[1].Message, "required") {
		t.Fatalf("expected the first failing rule to win, got %q", ve.Errors[1].Message)
	}
}

func TestValidator_ShortClassesFailsMin(t *testing.T) {
	ev := NewValidator()

	req := createUserRequest{Name: "Leah", Classes: "S"}
	err := ev.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "Classes" {
		t.Fatalf("unexpected errors: %v", ve.Errors)
	}
	if !strings.Contains(ve.Errors[0].Message, "at least 2") {
		t.Fatalf("unexpected message: %q", ve.Errors[0].Message)
	}
}

func TestValidator_ValidInputPasses(t *testing.T) {
	ev := NewValidator()

	req := createUserRequest{Name: "Pamela", Classes: "CSC 430"}
	if err := ev.Validate(&req); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestValidator_ArrayElementRules(t *testing.T) {
	ev := NewValidator()

	lng, lat := -120.65, 35.3
	req := buildingRequest{
		Name:      "Kennedy Library",
		Location:  locationRequest{Longitude: &lng, Latitude: &lat},
		Amenities: []string{"Library", ""},
	}
	err := ev.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty amenity, got %v", err)
	}
}

func TestBindRequest_SanitizesBeforeRules(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	body := strings.NewReader(`{"name":"  Pamela <3  ","Classes":"  CSC 430 "}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var parsed createUserRequest
	if err := bindRequest(c, &parsed); err != nil {
		t.Fatalf("bindRequest: %v", err)
	}

	if parsed.Name != "Pamela &lt;3" {
		t.Fatalf("expected trimmed and escaped name, got %q", parsed.Name)
	}
	if parsed.Classes != "CSC 430" {
		t.Fatalf("expected trimmed classes, got %q", parsed.Classes)
	}
}

func TestBindRequest_WhitespaceOnlyFieldFailsRequired(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	// Trimming runs before the rules, so all-whitespace input is empty input.
	body := strings.NewReader(`{"name":"   ","Classes":"CSC 430"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var parsed createUserRequest
	err := bindRequest(c, &parsed)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "name" {
		t.Fatalf("unexpected errors: %v", ve.Errors)
	}
}
