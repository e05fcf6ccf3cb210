// internal/app/features/reviews/update.go
package reviews

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/store/queries/companystats"
	"github.com/dalemusser/alumnivoice/internal/app/store/queries/populate"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/sanitize"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate applies a partial update to a review (PUT /api/reviews/{id}).
// Only the author or an admin may update; only supplied fields change.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	var in updateInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	p, _ := auth.CurrentUser(r)
	if rv.AuthorID.Hex() != p.ID && !p.IsAdmin() {
		httpjson.Error(w, http.StatusForbidden, "Not authorized to update this review")
		return
	}

	set := buildUpdateSet(in)
	if len(set) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "No fields to update")
		return
	}

	updated, err := h.Reviews.Update(ctx, id, set)
	if err != nil {
		h.Log.Error("review update failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not update review")
		return
	}

	companystats.RecomputeLogged(ctx, h.DB, updated.CompanyID, h.Log)

	view, err := populate.One(ctx, h.DB, *updated)
	if err != nil {
		h.Log.Error("review update populate failed", zap.Error(err))
		httpjson.Write(w, http.StatusOK, map[string]any{"success": true, "review": updated})
		return
	}
	httpjson.Write(w, http.StatusOK, reviewResponse{
		Success: true,
		Message: "Review updated successfully",
		Review:  view,
	})
}

func buildUpdateSet(in updateInput) bson.M {
	set := bson.M{}
	if in.OverallRating != nil {
		set["overall_rating"] = *in.OverallRating
	}
	if in.WorkCulture != nil {
		set["work_culture"] = *in.WorkCulture
	}
	if in.WorkLifeBalance != nil {
		set["work_life_balance"] = *in.WorkLifeBalance
	}
	if in.CareerGrowth != nil {
		set["career_growth"] = *in.CareerGrowth
	}
	if in.Compensation != nil {
		set["compensation"] = *in.Compensation
	}
	if in.Management != nil {
		set["management"] = *in.Management
	}
	if in.Title != nil {
		set["title"] = sanitize.Text(*in.Title)
	}
	if in.Content != nil {
		set["content"] = sanitize.Text(*in.Content)
	}
	if in.Pros != nil {
		set["pros"] = sanitize.TextSlice(*in.Pros)
	}
	if in.Cons != nil {
		set["cons"] = sanitize.TextSlice(*in.Cons)
	}
	if in.Recommendations != nil {
		set["recommendations"] = *in.Recommendations
	}
	if in.IsAnonymous != nil {
		set["is_anonymous"] = *in.IsAnonymous
	}
	if in.LinkedinProfile != nil {
		set["linkedin_profile"] = *in.LinkedinProfile
	}
	return set
}
