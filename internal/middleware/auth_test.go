// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type stubVerifier struct {
	claims map[string]*AccessTokenClaims
	err    error
}

func (v *stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*AccessTokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	claims, ok := v.claims[token]
	if !ok {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}
	return claims, nil
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s:%s", GetUsername(r.Context()), GetUserRole(r.Context()))
	})
}

func TestAuthenticator_MissingToken(t *testing.T) {
	handler := Authenticator(&stubVerifier{})(echoIdentity())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticator_InvalidToken(t *testing.T) {
	handler := Authenticator(&stubVerifier{})(echoIdentity())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticator_ValidToken(t *testing.T) {
	verifier := &stubVerifier{
		claims: map[string]*AccessTokenClaims{
			"good": {Username: "client1", Role: "client", JTI: "jti-1"},
		},
	}
	handler := Authenticator(verifier)(echoIdentity())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "client1:client" {
		t.Fatalf("identity not propagated: %q", rec.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(ok)

	// Client role is rejected.
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, "client")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client role: expected 403, got %d", rec.Code)
	}

	// Admin passes through.
	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	ctx = context.WithValue(req.Context(), UserRoleKey, "admin")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin role: expected 200, got %d", rec.Code)
	}

	// No identity at all.
	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}
}
