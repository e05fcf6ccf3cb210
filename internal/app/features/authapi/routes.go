// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth routes (mounted at "/api/auth" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public
	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	// Signed-in
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/me", h.ServeMe)
		pr.Put("/profile", h.HandleUpdateProfile)
		pr.Put("/change-password", h.HandleChangePassword)
		pr.Put("/update-profile", h.HandleOnboarding)
		pr.Post("/create-initial-review", h.HandleCreateInitialReview)
	})

	return r
}
