// internal/app/features/reviews/helpful.go
package reviews

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleToggleHelpful records or withdraws a helpful vote
// (POST /api/reviews/{id}/helpful). The company rating is unaffected.
func (h *Handler) HandleToggleHelpful(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	p, _ := auth.CurrentUser(r)
	voterID, err := p.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	count, hasVoted, err := h.Reviews.ToggleHelpful(ctx, id, voterID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "Review not found")
			return
		}
		h.Log.Error("helpful toggle failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not record vote")
		return
	}

	msg := "Marked as helpful"
	if !hasVoted {
		msg = "Removed helpful vote"
	}
	h.Log.Debug("helpful toggled",
		zap.String("review_id", id.Hex()),
		zap.Bool("has_voted", hasVoted))

	httpjson.Write(w, http.StatusOK, helpfulResponse{
		Success:      true,
		Message:      msg,
		HelpfulCount: count,
		HasVoted:     hasVoted,
	})
}
