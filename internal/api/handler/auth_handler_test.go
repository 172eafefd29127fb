package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/course-platform/internal/core/domain"
	"github.com/skillforge/course-platform/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) error
	signinFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (string, error) {
	return s.signinFn(ctx, email, password)
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			if in.Email != "a@x.com" || in.FirstName != "A" || in.LastName != "B" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signup",
		`{"email":"a@x.com","password":"Abc!23","firstName":"A","lastName":"B"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "User Signed Up" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signup_AdminMessage(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error { return nil },
	}
	h := NewAuthHandler(stub, domain.NamespaceAdmin)

	c, rec := newAuthContext(t, "/api/v1/admin/signup",
		`{"email":"a@x.com","password":"Abc!23","firstName":"A","lastName":"B"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Admin Signed Up" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signup_IncorrectFormat(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			t.Fatalf("service must not be called on schema failure")
			return nil
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	// Bad email format, missing names.
	c, rec := newAuthContext(t, "/api/v1/user/signup", `{"email":"nope","password":"Abc!23"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Incorrect Format" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signup_WeakPassword(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			return domain.ErrWeakPassword
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signup",
		`{"email":"a@x.com","password":"abc","firstName":"A","lastName":"B"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != passwordPolicyMessage {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signup_StoreFailure(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			return domain.ErrAccountExists
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signup",
		`{"email":"a@x.com","password":"Abc!23","firstName":"A","lastName":"B"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "error while signing up" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signin_Success(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "a@x.com" || password != "Abc!23" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signin", `{"email":"a@x.com","password":"Abc!23"}`)

	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if tok := decodeMessage(t, rec)["token"]; tok != "token123" {
		t.Fatalf("expected token, got %v", tok)
	}
}

func TestAuthHandler_Signin_UnknownEmail(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrAccountNotFound
		},
	}

	h := NewAuthHandler(stub, domain.NamespaceUser)
	c, rec := newAuthContext(t, "/api/v1/user/signin", `{"email":"ghost@x.com","password":"pw"}`)
	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Incorrect creds" {
		t.Fatalf("unexpected user message: %v", msg)
	}

	h = NewAuthHandler(stub, domain.NamespaceAdmin)
	c, rec = newAuthContext(t, "/api/v1/admin/signin", `{"email":"ghost@x.com","password":"pw"}`)
	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Incorrect credentials" {
		t.Fatalf("unexpected admin message: %v", msg)
	}
}

func TestAuthHandler_Signin_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signin", `{"email":"a@x.com","password":"bad"}`)

	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Invalid Credentials" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestAuthHandler_Signin_StoreFailure(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(stub, domain.NamespaceUser)

	c, rec := newAuthContext(t, "/api/v1/user/signin", `{"email":"a@x.com","password":"pw"}`)

	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "An error occurred during sign-in" {
		t.Fatalf("unexpected message: %v", msg)
	}
}
