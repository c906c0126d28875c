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

	"github.com/spellnotes/notes-api/internal/api/middleware"
	"github.com/spellnotes/notes-api/internal/core/domain"
)

type stubNoteService struct {
	createFn func(ctx context.Context, owner *domain.User, content string) (*domain.Note, error)
	listFn   func(ctx context.Context, owner *domain.User) ([]*domain.Note, error)
}

func (s *stubNoteService) CreateNote(ctx context.Context, owner *domain.User, content string) (*domain.Note, error) {
	return s.createFn(ctx, owner, content)
}

func (s *stubNoteService) ListNotes(ctx context.Context, owner *domain.User) ([]*domain.Note, error) {
	return s.listFn(ctx, owner)
}

func newNoteContext(t *testing.T, method, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

func TestNoteHandler_Create_Success(t *testing.T) {
	owner := &domain.User{ID: "user_1", Username: "alice"}
	stub := &stubNoteService{
		createFn: func(ctx context.Context, u *domain.User, content string) (*domain.Note, error) {
			if u.ID != "user_1" {
				t.Fatalf("owner not taken from context: %+v", u)
			}
			if content != "hello world" {
				t.Fatalf("unexpected content: %q", content)
			}
			return &domain.Note{ID: "note_1", UserID: u.ID, Content: content}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPost, `{"content":"hello world"}`, owner)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "note_1" || resp["user_id"] != "user_1" || resp["content"] != "hello world" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNoteHandler_Create_SpellingRejected(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(ctx context.Context, u *domain.User, content string) (*domain.Note, error) {
			return nil, domain.ErrSpellingErrors
		},
	}
	handler := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPost, `{"content":"helo wrold"}`, &domain.User{ID: "user_1"})
	err := handler.Create(c)
	if !errors.Is(err, domain.ErrSpellingErrors) {
		t.Fatalf("expected ErrSpellingErrors to propagate, got %v", err)
	}
}

func TestNoteHandler_Create_NoAuthenticatedUser(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(ctx context.Context, u *domain.User, content string) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPost, `{"content":"hello"}`, nil)
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestNoteHandler_Create_EmptyContent(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(ctx context.Context, u *domain.User, content string) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPost, `{}`, &domain.User{ID: "user_1"})
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestNoteHandler_List_ReturnsOwnerNotesOnly(t *testing.T) {
	owner := &domain.User{ID: "user_a", Username: "alice"}
	stub := &stubNoteService{
		listFn: func(ctx context.Context, u *domain.User) ([]*domain.Note, error) {
			if u.ID != "user_a" {
				t.Fatalf("list not scoped to context user: %+v", u)
			}
			return []*domain.Note{
				{ID: "n1", UserID: "user_a", Content: "first"},
				{ID: "n2", UserID: "user_a", Content: "second"},
			}, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "", owner)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(resp))
	}
	for _, n := range resp {
		if n["user_id"] != "user_a" {
			t.Fatalf("foreign note leaked: %+v", n)
		}
	}
}

func TestNoteHandler_List_EmptyIsEmptyArray(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(ctx context.Context, u *domain.User) ([]*domain.Note, error) {
			return nil, nil
		},
	}
	handler := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "", &domain.User{ID: "user_1"})
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}
