package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "username already registered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "could not validate credentials"},
		{"spelling errors", domain.ErrSpellingErrors, http.StatusBadRequest, "spelling errors found"},
		{"speller unavailable", domain.ErrSpellerUnavailable, http.StatusBadGateway, "spelling service unavailable"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "not found"), http.StatusNotFound, "not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp["error"])
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("insert user"), domain.ErrUsernameTaken)
	NewHTTPErrorHandler(zerolog.Nop())(wrapped, c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped conflict, got %d", rec.Code)
	}
}
