package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atinyakov/taskwarden/internal/auth"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

var testSecret = []byte("test-secret")

func TestBearerAuth_NoToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called when no token provided")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for a non-bearer header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for an invalid token")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden, got %d", rec.Code)
	}
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	tok, err := auth.GenerateToken("u1", "alice", []byte("another-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for a token signed with another secret")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	tok, err := auth.GenerateToken("u1", "alice", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}

	claims := GetClaimsFromContext(dummy.ctx)
	if claims == nil {
		t.Fatal("expected claims in context")
	}
	if claims.UserID != "u1" || claims.Username != "alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestGetClaimsFromContext(t *testing.T) {
	// no value
	if c := GetClaimsFromContext(context.Background()); c != nil {
		t.Errorf("expected nil claims for empty context, got %+v", c)
	}
	// with value
	want := &auth.Claims{UserID: "u2", Username: "bob"}
	ctx := WithClaims(context.Background(), want)
	if got := GetClaimsFromContext(ctx); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
