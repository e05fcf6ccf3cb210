// Package auth provides bearer-token authentication for the API.
//
// A Manager issues signed tokens at login/registration and, per request,
// resolves the Authorization header back to a fresh user document so role
// changes and deactivations take effect immediately. The current user is
// injected into the request context; handlers read it with CurrentUser.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Principal is what we resolve from a bearer token and inject into
// r.Context().
type Principal struct {
	ID       string
	Name     string
	Email    string
	Role     string
	UserType string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

// CanReview reports whether the principal may author reviews.
func (p *Principal) CanReview() bool {
	return p.Role == models.RoleAlumni || p.Role == models.RoleAdmin
}

// ObjectID parses the principal's id. The middleware only ever stores hex
// ObjectIDs, so failure means a hand-built test principal.
func (p *Principal) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(p.ID)
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated principal and a "found?" flag.
func CurrentUser(r *http.Request) (*Principal, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Principal)
	return u, ok
}

func withUser(r *http.Request, u *Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a principal directly, bypassing token verification.
// For handler tests only.
func WithTestUser(r *http.Request, u *Principal) *http.Request {
	return withUser(r, u)
}

// LoadBearerUser parses the Authorization header if present, verifies the
// token, and loads the referenced user. Requests without a (valid) token
// continue anonymously; route groups decide whether that is acceptable.
func (m *Manager) LoadBearerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.verify(tok)
		if err != nil {
			// Expired or tampered token: treat as anonymous rather than
			// failing public routes; protected groups will 401.
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		var u models.User
		err = m.db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				m.log.Error("bearer user lookup failed", zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}
		if !u.IsActive {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, withUser(r, &Principal{
			ID:       u.ID.Hex(),
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			UserType: u.UserType,
		}))
	})
}

// RequireSignedIn ensures a principal is in context (set by LoadBearerUser).
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the principal holds one of the allowed roles.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				httpjson.Error(w, http.StatusForbidden, "Access denied. Insufficient permissions.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireReviewer admits alumni and admins — the roles allowed to author
// reviews and create companies.
func RequireReviewer(next http.Handler) http.Handler {
	return RequireRole(models.RoleAlumni, models.RoleAdmin)(next)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

// TokenTTLDefault is the issued-token lifetime unless configured otherwise.
const TokenTTLDefault = 7 * 24 * time.Hour
