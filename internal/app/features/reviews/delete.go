// internal/app/features/reviews/delete.go
package reviews

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/store/queries/companystats"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete soft-deletes a review (DELETE /api/reviews/{id}). Only the
// author or an admin may delete. If this was the company's last active
// review, its stored rating is left as it was.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	p, _ := auth.CurrentUser(r)
	if rv.AuthorID.Hex() != p.ID && !p.IsAdmin() {
		httpjson.Error(w, http.StatusForbidden, "Not authorized to delete this review")
		return
	}

	if err := h.Reviews.SoftDelete(ctx, id); err != nil {
		h.Log.Error("review delete failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not delete review")
		return
	}

	companystats.RecomputeLogged(ctx, h.DB, rv.CompanyID, h.Log)

	httpjson.OK(w, "Review deleted successfully")
}
