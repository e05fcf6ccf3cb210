// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS, body limits); AppConfig is everything specific to AlumniVoice.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token auth
	JWTSecret string        // Signing secret for issued tokens (must be strong in production)
	JWTExpiry time.Duration // Issued-token lifetime (default 168h)

	// Registration policy: only addresses under this domain may register.
	// Blank admits any address.
	AllowedEmailDomain string

	// Industry assigned to companies created through the initial-review
	// bootstrap, where the client supplies no industry.
	DefaultIndustry string
}
