package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid dimensions", domain.ErrInvalidDimensions, http.StatusUnprocessableEntity},
		{"carrier not found", domain.ErrCarrierNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := runErrorHandler(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("code: want %d, got %d", tc.wantCode, code)
			}
			if msg == "" {
				t.Error("error envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("quote pipeline"), domain.ErrInvalidDimensions)

	code, _ := runErrorHandler(t, wrapped)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("wrapped domain error must still map: want 422, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "kettle"))
	if code != http.StatusTeapot {
		t.Errorf("code: want 418, got %d", code)
	}
	if msg != "kettle" {
		t.Errorf("message: want kettle, got %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Errorf("code: want 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal details must not leak, got %q", msg)
	}
}
