package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func issueToken(t *testing.T, svc *JWTService) string {
	t.Helper()
	if _, err := svc.Register(context.Background(), "mw@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "mw@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return token
}

func TestMiddlewareInjectsClaims(t *testing.T) {
	svc := newTestService(time.Hour)
	token := issueToken(t, svc)

	var gotEmail string
	handler := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetUserFromContext(r.Context())
		if !ok {
			t.Error("expected claims in context")
			return
		}
		gotEmail = claims.Email
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotEmail != "mw@example.com" {
		t.Errorf("claims email = %q", gotEmail)
	}
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	svc := newTestService(time.Hour)

	handler := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	svc := newTestService(time.Hour)

	handler := Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestOptionalMiddlewareLetsAnonymousThrough(t *testing.T) {
	svc := newTestService(time.Hour)

	var sawClaims bool
	handler := OptionalMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawClaims = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if sawClaims {
		t.Error("anonymous request should carry no claims")
	}
}
