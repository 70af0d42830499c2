package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"adoptme/internal/platform/logger"
	"adoptme/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	valid string
}

func (s stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != s.valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return auth.Claims{UserID: "u1", Email: "ana@example.com"}, nil
}

func claimsEcho(w http.ResponseWriter, r *http.Request) {
	c, ok := GetClaims(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	_, _ = w.Write([]byte(c.UserID + "|" + GetToken(r.Context())))
}

func TestAuthContext_CookieAndBearer(t *testing.T) {
	h := AuthContext(stubVerifier{valid: "good"}, "coderCookie", logger.Nop())(http.HandlerFunc(claimsEcho))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "coderCookie", Value: "good"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u1|good", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "u1|good", rec.Body.String())
}

func TestAuthContext_InvalidTokenPassesThrough(t *testing.T) {
	h := AuthContext(stubVerifier{valid: "good"}, "coderCookie", logger.Nop())(http.HandlerFunc(claimsEcho))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("abc"))
}

func TestRecover_WritesEnvelope(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"Internal server error"}`, rec.Body.String())
}

func TestRequestLog_PutsLoggerInContext(t *testing.T) {
	base := logger.Nop()
	var got logger.Logger

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLog(base))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		got = logger.FromContext(r.Context(), nil)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, got)
	assert.NotSame(t, base, got)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}
