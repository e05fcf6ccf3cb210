// internal/app/features/users/handler.go
package users

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
)

// Handler is the feature-level entry point for user directory routes.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Users *userstore.Store
}

// NewHandler constructs a users handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Users: userstore.New(db),
	}
}
