// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user routes (mounted at "/api/users" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/stats/overview", h.ServeStatsOverview)
	r.Get("/{id}", h.ServeGet)

	// Admin directory and moderation
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole(models.RoleAdmin))

		pr.Get("/", h.ServeList)
		pr.Put("/{id}/verify", h.HandleVerify)
		pr.Put("/{id}/activate", h.HandleActivate)
		pr.Put("/{id}/deactivate", h.HandleDeactivate)
	})

	return r
}
