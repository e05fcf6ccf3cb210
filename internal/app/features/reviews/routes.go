// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the review routes (mounted at "/api/reviews" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/", h.ServeList)
	r.Get("/company/{companyId}", h.ServeListByCompany)
	r.Get("/{id}", h.ServeGet)

	// Voting is open to any signed-in user
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/{id}/helpful", h.HandleToggleHelpful)
	})

	// Authoring requires the reviewer roles; update/delete additionally
	// check ownership in the handlers (admins may touch any review).
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireReviewer)
		pr.Post("/", h.HandleCreate)
	})
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
