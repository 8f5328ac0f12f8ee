// AngelaMos | 2026
// handler_test.go

package message

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/client-portal/internal/middleware"
)

// fakeAuth injects a fixed identity the way the real authenticator does
// after verifying a token.
func fakeAuth(username string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(username string) http.Handler {
	svc, _ := newTestService()
	handler := NewHandler(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r, fakeAuth(username))
	return r
}

func TestHandler_PostMessage(t *testing.T) {
	router := newTestRouter("client1")

	req := httptest.NewRequest(
		http.MethodPost,
		"/projects/1/messages",
		strings.NewReader(`{"content":"Looking good so far"}`),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"timestamp"`) {
		t.Fatalf("expected a timestamp in the response: %s", rec.Body.String())
	}
}

func TestHandler_PostMessage_EmptyContent(t *testing.T) {
	router := newTestRouter("client1")

	for _, body := range []string{`{"content":""}`, `{"content":"   "}`, `{}`} {
		req := httptest.NewRequest(
			http.MethodPost,
			"/projects/1/messages",
			strings.NewReader(body),
		)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestHandler_ListMessages_ForeignProject(t *testing.T) {
	router := newTestRouter("client2")

	req := httptest.NewRequest(http.MethodGet, "/projects/1/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign project, got %d", rec.Code)
	}
}

func TestHandler_ListMessages_BadProjectID(t *testing.T) {
	router := newTestRouter("client1")

	req := httptest.NewRequest(http.MethodGet, "/projects/abc/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric project id, got %d", rec.Code)
	}
}
