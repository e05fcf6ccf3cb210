// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authapifeature "github.com/dalemusser/alumnivoice/internal/app/features/authapi"
	companiesfeature "github.com/dalemusser/alumnivoice/internal/app/features/companies"
	healthfeature "github.com/dalemusser/alumnivoice/internal/app/features/health"
	reviewsfeature "github.com/dalemusser/alumnivoice/internal/app/features/reviews"
	usersfeature "github.com/dalemusser/alumnivoice/internal/app/features/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. AlumniVoice builds the token manager,
// applies the bearer-user middleware globally, and mounts the health check
// plus the four /api feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	authMgr, err := auth.NewManager(appCfg.JWTSecret, appCfg.JWTExpiry, deps.MongoDatabase, logger)
	if err != nil {
		logger.Error("auth manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: resolves a bearer token to a fresh user
	// document so role changes and deactivations take effect immediately.
	// Requests without a valid token continue anonymously.
	r.Use(authMgr.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/health", healthHandler.Serve)

	// API surface
	authHandler := authapifeature.NewHandler(deps.MongoDatabase, authMgr, logger,
		appCfg.AllowedEmailDomain, appCfg.DefaultIndustry)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	reviewsHandler := reviewsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/reviews", reviewsfeature.Routes(reviewsHandler))

	companiesHandler := companiesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/companies", companiesfeature.Routes(companiesHandler))

	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler))

	return r, nil
}
