package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
)

type stubResolver struct {
	users map[string]*domain.User
	err   error
}

func (r *stubResolver) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{
		"tok123": {ID: "u1", Email: "a@x.com", AccessToken: "tok123"},
	}}

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "tok123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(resolver)(func(c echo.Context) error {
		called = true
		user, ok := UserFrom(c)
		if !ok {
			t.Fatalf("user not attached to context")
		}
		if user.ID != "u1" {
			t.Fatalf("wrong user attached: %q", user.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BearerPrefixTolerated(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{
		"tok123": {ID: "u1", AccessToken: "tok123"},
	}}

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "not-a-real-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_StoreFailureIs500(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{err: errors.New("store down")}

	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	req.Header.Set("Authorization", "tok123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error for store failure")
	}
	e.HTTPErrorHandler(err, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestUserFrom_AbsentWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if _, ok := UserFrom(c); ok {
		t.Fatalf("expected no user on bare context")
	}
}
