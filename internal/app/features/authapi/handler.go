// internal/app/features/authapi/handler.go
package authapi

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
)

// Handler is the feature-level entry point for account and session routes.
type Handler struct {
	DB   *mongo.Database
	Auth *auth.Manager
	Log  *zap.Logger

	Users     *userstore.Store
	Companies *companystore.Store
	Reviews   *reviewstore.Store

	// EmailDomain restricts registration, e.g. "a.com" admits only
	// name@a.com addresses. Empty disables the restriction.
	EmailDomain string

	// DefaultIndustry is assigned to companies created through the
	// initial-review bootstrap.
	DefaultIndustry string
}

// NewHandler constructs an auth API handler bound to a DB, token manager,
// and logger.
func NewHandler(db *mongo.Database, am *auth.Manager, logger *zap.Logger, emailDomain, defaultIndustry string) *Handler {
	return &Handler{
		DB:              db,
		Auth:            am,
		Log:             logger,
		Users:           userstore.New(db),
		Companies:       companystore.New(db),
		Reviews:         reviewstore.New(db),
		EmailDomain:     emailDomain,
		DefaultIndustry: defaultIndustry,
	}
}
