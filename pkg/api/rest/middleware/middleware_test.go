package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func passThroughHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareDisabledPassesThrough(t *testing.T) {
	var called bool
	handler := AuthMiddleware(AuthConfig{Enabled: false})(passThroughHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vectors", nil))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("disabled auth should pass through, got code %d called %v", rec.Code, called)
	}
}

func TestAuthMiddlewarePublicPath(t *testing.T) {
	var called bool
	cfg := AuthConfig{Enabled: true, JWTSecret: "s", PublicPaths: []string{"/v1/health"}}
	handler := AuthMiddleware(cfg)(passThroughHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	if !called {
		t.Fatal("public path should not require a token")
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	var called bool
	handler := AuthMiddleware(AuthConfig{Enabled: true, JWTSecret: "s"})(passThroughHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vectors", nil))

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: code = %d, called = %v; want 401, false", rec.Code, called)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	const secret = "test-secret"
	token, err := GenerateToken("u1", "alice", []string{"reader"}, "default", secret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotClaims *Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(AuthConfig{Enabled: true, JWTSecret: secret})(inner)

	req := httptest.NewRequest(http.MethodGet, "/v1/vectors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("valid token rejected with code %d: %s", rec.Code, rec.Body.String())
	}
	if gotClaims == nil || gotClaims.UserID != "u1" {
		t.Fatalf("claims not propagated: %+v", gotClaims)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "alice", nil, "", "secret-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var called bool
	handler := AuthMiddleware(AuthConfig{Enabled: true, JWTSecret: "secret-b"})(passThroughHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/v1/vectors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("mismatched secret: code = %d, called = %v; want 401, false", rec.Code, called)
	}
}

func TestAuthMiddlewareAdminPath(t *testing.T) {
	const secret = "test-secret"
	cfg := AuthConfig{Enabled: true, JWTSecret: secret, AdminPaths: []string{"/v1/admin"}}

	readerToken, _ := GenerateToken("u1", "alice", []string{"reader"}, "", secret)
	adminToken, _ := GenerateToken("u2", "bob", []string{"admin"}, "", secret)

	var called bool
	handler := AuthMiddleware(cfg)(passThroughHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+readerToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin on admin path: code = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin on admin path: code = %d, want 200", rec.Code)
	}
}

func TestRateLimitMiddlewareEnforcesBurst(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		Enabled:        true,
		RequestsPerSec: 0.001, // effectively no refill during the test
		Burst:          2,
		PerIP:          true,
	})

	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(limiter)(inner)

	var lastCode int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/vectors", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	if calls != 2 {
		t.Errorf("handler ran %d times, want 2 (burst)", calls)
	}
	if lastCode != http.StatusTooManyRequests {
		t.Errorf("third request code = %d, want 429", lastCode)
	}
}

func TestRateLimitMiddlewareSeparatesClients(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		Enabled:        true,
		RequestsPerSec: 0.001,
		Burst:          1,
		PerIP:          true,
	})

	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(limiter)(inner)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:2", "10.0.0.3:3"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/vectors", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("first request from %s got code %d", addr, rec.Code)
		}
	}

	if calls != 3 {
		t.Errorf("handler ran %d times, want 3 (one per client)", calls)
	}
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{Enabled: false})
	var calls int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	handler := RateLimitMiddleware(limiter)(inner)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if calls != 5 {
		t.Errorf("disabled limiter blocked requests: %d of 5 ran", calls)
	}
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := getClientIP(req); got != "203.0.113.7" {
		t.Errorf("getClientIP = %q, want first forwarded hop", got)
	}

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "198.51.100.9")
	if got := getClientIP(req); got != "198.51.100.9" {
		t.Errorf("getClientIP = %q, want X-Real-IP", got)
	}
}
