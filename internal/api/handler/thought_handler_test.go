package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
)

type stubThoughtService struct {
	createFn func(ctx context.Context, message string) (*domain.Thought, error)
	getFn    func(ctx context.Context, id string) (*domain.Thought, error)
	listFn   func(ctx context.Context, input ports.ListThoughtsInput) ([]*domain.Thought, error)
	likeFn   func(ctx context.Context, id string) (*domain.Thought, error)
}

func (s *stubThoughtService) Create(ctx context.Context, message string) (*domain.Thought, error) {
	return s.createFn(ctx, message)
}

func (s *stubThoughtService) Get(ctx context.Context, id string) (*domain.Thought, error) {
	return s.getFn(ctx, id)
}

func (s *stubThoughtService) List(ctx context.Context, input ports.ListThoughtsInput) ([]*domain.Thought, error) {
	return s.listFn(ctx, input)
}

func (s *stubThoughtService) Like(ctx context.Context, id string) (*domain.Thought, error) {
	return s.likeFn(ctx, id)
}

// withUser mimics the auth gate attaching a resolved user to the context.
func withUser(c echo.Context) {
	c.Set("auth.user", &domain.User{ID: "u1", Email: "a@x.com"})
}

func TestThoughtHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubThoughtService{
		createFn: func(ctx context.Context, message string) (*domain.Thought, error) {
			if message != "hello world" {
				t.Fatalf("unexpected message: %q", message)
			}
			return &domain.Thought{ID: "t1", Message: message, Hearts: 0, CreatedAt: now}, nil
		},
	}
	h := NewThoughtHandler(stub)

	body := strings.NewReader(`{"message":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withUser(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp thoughtResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "t1" || resp.Hearts != 0 || resp.Message != "hello world" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestThoughtHandler_Create_NoUserInContext(t *testing.T) {
	e := newTestEcho()
	stub := &stubThoughtService{
		createFn: func(ctx context.Context, message string) (*domain.Thought, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewThoughtHandler(stub)

	body := strings.NewReader(`{"message":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestThoughtHandler_Create_TooShort(t *testing.T) {
	e := newTestEcho()
	stub := &stubThoughtService{
		createFn: func(ctx context.Context, message string) (*domain.Thought, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewThoughtHandler(stub)

	body := strings.NewReader(`{"message":"hey"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withUser(c)

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestThoughtHandler_List_QueryParams(t *testing.T) {
	e := newTestEcho()
	var got ports.ListThoughtsInput
	stub := &stubThoughtService{
		listFn: func(ctx context.Context, input ports.ListThoughtsInput) ([]*domain.Thought, error) {
			got = input
			return nil, nil
		},
	}
	h := NewThoughtHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/messages?liked=true&search=happy", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !got.Liked || got.Search != "happy" {
		t.Fatalf("query params not passed through: %+v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// An empty result must serialize as [] rather than null.
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}

func TestThoughtHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubThoughtService{
		getFn: func(ctx context.Context, id string) (*domain.Thought, error) {
			return nil, domain.ErrThoughtNotFound
		},
	}
	h := NewThoughtHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/messages/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/messages/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	if err != domain.ErrThoughtNotFound {
		t.Fatalf("expected ErrThoughtNotFound passthrough, got %v", err)
	}
}

func TestThoughtHandler_Like_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubThoughtService{
		likeFn: func(ctx context.Context, id string) (*domain.Thought, error) {
			if id != "t1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return &domain.Thought{ID: id, Message: "hello world", Hearts: 2}, nil
		},
	}
	h := NewThoughtHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/messages/t1/like", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/messages/:id/like")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Like(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp thoughtResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Hearts != 2 {
		t.Fatalf("expected 2 hearts, got %d", resp.Hearts)
	}
}
