package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := NewManager("0123456789abcdef0123456789abcdef", ttl, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager("", time.Hour, nil, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t, time.Hour)
	id := primitive.NewObjectID()

	tok, err := m.IssueToken(id)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	got, err := m.verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != id {
		t.Errorf("verify subject = %s, want %s", got.Hex(), id.Hex())
	}
}

func TestVerify_Expired(t *testing.T) {
	m := newTestManager(t, -time.Minute)
	tok, err := m.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := m.verify(tok); err == nil {
		t.Fatal("expected expired-token error")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newTestManager(t, time.Hour)
	other, _ := NewManager("ffffffffffffffffffffffffffffffff", time.Hour, nil, zap.NewNop())

	tok, err := m.IssueToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := other.verify(tok); err == nil {
		t.Fatal("expected signature error for token signed with another secret")
	}
}

func TestRequireSignedIn(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireSignedIn(next)

	// Anonymous request is rejected.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", rec.Code)
	}

	// Injected principal passes through.
	rec = httptest.NewRecorder()
	req := WithTestUser(httptest.NewRequest("GET", "/api/auth/me", nil), &Principal{
		ID:   primitive.NewObjectID().Hex(),
		Role: models.RoleStudent,
	})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("signed in: status = %d, want 204", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireRole(models.RoleAdmin)(next)

	tests := []struct {
		name string
		user *Principal
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"student", &Principal{ID: "x", Role: models.RoleStudent}, http.StatusForbidden},
		{"admin", &Principal{ID: "x", Role: models.RoleAdmin}, http.StatusNoContent},
		{"admin case-insensitive", &Principal{ID: "x", Role: "Admin"}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/users", nil)
			if tt.user != nil {
				req = WithTestUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireReviewer(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireReviewer(next)

	tests := []struct {
		role string
		want int
	}{
		{models.RoleAlumni, http.StatusNoContent},
		{models.RoleAdmin, http.StatusNoContent},
		{models.RoleStudent, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := WithTestUser(httptest.NewRequest("POST", "/api/reviews", nil), &Principal{ID: "x", Role: tt.role})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("role %s: status = %d, want %d", tt.role, rec.Code, tt.want)
			}
		})
	}
}

func TestPrincipalHelpers(t *testing.T) {
	p := &Principal{ID: primitive.NewObjectID().Hex(), Role: models.RoleAlumni}
	if !p.CanReview() {
		t.Error("alumni should be able to review")
	}
	if p.IsAdmin() {
		t.Error("alumni is not admin")
	}
	if _, err := p.ObjectID(); err != nil {
		t.Errorf("ObjectID: %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer   spaced  ", "spaced"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		if got := bearerToken(r); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
