package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, email, password string) (string, error)
	signinFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string) (string, error) {
	return s.signupFn(ctx, email, password)
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

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "a@example.com" || password != "123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/signup", `{"email":"a@example.com","password":"123"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp)
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrCredentialsTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/signup", `{"email":"a@example.com","password":"123"}`)
	if err := h.Signup(c); !errors.Is(err, domain.ErrCredentialsTaken) {
		t.Fatalf("expected ErrCredentialsTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidBody(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{
		"not-json",
		`{"email":"","password":"123"}`,
		`{"email":"not-an-email","password":"123"}`,
		`{"email":"a@example.com","password":""}`,
		`{}`,
	} {
		c, _ := newAuthContext(t, "/auth/signup", body)
		err := h.Signup(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %q, got %v", body, err)
		}
	}
}

func TestAuthHandler_Signin_Success(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			return "token456", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/signin", `{"email":"a@example.com","password":"123"}`)
	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token456") {
		t.Fatalf("missing token in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signin_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/signin", `{"email":"a@example.com","password":"bad"}`)
	if err := h.Signin(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
