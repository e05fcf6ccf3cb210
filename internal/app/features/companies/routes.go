// internal/app/features/companies/routes.go
package companies

import (
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the company routes (mounted at "/api/companies" from
// bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/", h.ServeList)
	r.Get("/stats/overview", h.ServeStatsOverview)
	r.Get("/{id}", h.ServeGet)

	// Alumni and admins may add companies
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireReviewer)
		pr.Post("/", h.HandleCreate)
	})

	// Admin-only maintenance
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole(models.RoleAdmin))
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
