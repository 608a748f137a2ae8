package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, username, password string) (string, error)
	loginFn  func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, username, password string) (string, error) {
	return s.signupFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignupCreated(t *testing.T) {
	var gotUsername, gotPassword string
	svc := &stubAuthService{
		signupFn: func(_ context.Context, username, password string) (string, error) {
			gotUsername, gotPassword = username, password
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/signup", `{"username":"  frank  ","pwd":"s3cret!"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotUsername != "frank" {
		t.Fatalf("expected trimmed username, got %q", gotUsername)
	}
	if gotPassword != "s3cret!" {
		t.Fatalf("password must reach the service verbatim, got %q", gotPassword)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_SignupShortPassword(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(context.Context, string, string) (string, error) {
			t.Fatal("service must not be called on invalid input")
			return "", nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/signup", `{"username":"frank","pwd":"abc"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp validationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "pwd" {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
}

func TestAuthHandler_SignupConflict(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrUsernameTaken
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/signup", `{"username":"frank","pwd":"s3cret!"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_LoginOK(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"username":"frank","pwd":"s3cret!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_LoginUnauthorized(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"username":"frank","pwd":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "unauthorized" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
}
