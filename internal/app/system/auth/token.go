// internal/app/system/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Manager signs and verifies bearer tokens and resolves them to users.
type Manager struct {
	secret []byte
	ttl    time.Duration
	db     *mongo.Database
	log    *zap.Logger
}

// NewManager builds a Manager. The signing secret must be non-empty; short
// secrets are accepted with a warning so local dev keeps working.
func NewManager(secret string, ttl time.Duration, db *mongo.Database, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if ttl <= 0 {
		ttl = TokenTTLDefault
	}
	return &Manager{secret: []byte(secret), ttl: ttl, db: db, log: logger}, nil
}

// IssueToken signs a token whose subject is the user's id. Each token
// carries a uuid jti so individual tokens are distinguishable in logs.
func (m *Manager) IssueToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// verify checks the signature and expiry and returns the subject user id.
func (m *Manager) verify(tokenString string) (primitive.ObjectID, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !tok.Valid {
		return primitive.NilObjectID, errors.New("invalid token")
	}
	return primitive.ObjectIDFromHex(claims.Subject)
}
