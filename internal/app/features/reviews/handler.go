// internal/app/features/reviews/handler.go
package reviews

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
)

// Handler is the feature-level entry point for review routes.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Reviews   *reviewstore.Store
	Companies *companystore.Store
}

// NewHandler constructs a reviews handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Reviews:   reviewstore.New(db),
		Companies: companystore.New(db),
	}
}
