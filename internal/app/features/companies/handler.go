// internal/app/features/companies/handler.go
package companies

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
)

// Handler is the feature-level entry point for company routes.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Companies *companystore.Store
}

// NewHandler constructs a companies handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Companies: companystore.New(db),
	}
}
