package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusForbidden, "credentials incorrect"},
		{"credentials taken", domain.ErrCredentialsTaken, http.StatusForbidden, "credentials taken"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many signin attempts"},
		{"bookmark not found", domain.ErrBookmarkNotFound, http.StatusNotFound, "bookmark not found"},
		{"bookmark access denied", domain.ErrBookmarkAccessDenied, http.StatusForbidden, "access to resource denied"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"echo error passthrough", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token"},
		{"unexpected error", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("repo: duplicate key"), domain.ErrCredentialsTaken)
	handler(wrapped, c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrapped domain error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.String(http.StatusOK, "already written"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
	if rec.Body.String() != "already written" {
		t.Fatalf("body was rewritten: %q", rec.Body.String())
	}
}
