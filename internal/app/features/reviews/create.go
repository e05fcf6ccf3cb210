// internal/app/features/reviews/create.go
package reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/store/queries/companystats"
	"github.com/dalemusser/alumnivoice/internal/app/store/queries/populate"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/sanitize"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate writes a new review (POST /api/reviews). The company must
// exist and be active; the duplicate check runs in the store.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	companyID, err := primitive.ObjectIDFromHex(in.Company)
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	p, _ := auth.CurrentUser(r)
	authorID, err := p.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Companies.GetByID(ctx, companyID); err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	rv, err := h.Reviews.Create(ctx, models.Review{
		AuthorID:        authorID,
		CompanyID:       companyID,
		OverallRating:   in.OverallRating,
		WorkCulture:     in.WorkCulture,
		WorkLifeBalance: in.WorkLifeBalance,
		CareerGrowth:    in.CareerGrowth,
		Compensation:    in.Compensation,
		Management:      in.Management,
		Title:           sanitize.Text(in.Title),
		Content:         sanitize.Text(in.Content),
		Pros:            sanitize.TextSlice(in.Pros),
		Cons:            sanitize.TextSlice(in.Cons),
		Recommendations: in.Recommendations,
		IsAnonymous:     in.IsAnonymous,
		LinkedinProfile: in.LinkedinProfile,
	})
	if err != nil {
		if errors.Is(err, reviewstore.ErrDuplicateReview) {
			httpjson.Error(w, http.StatusBadRequest, "You have already reviewed this company")
			return
		}
		h.Log.Error("review create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not create review")
		return
	}

	// The review stands even if this fails; the error is only logged.
	companystats.RecomputeLogged(ctx, h.DB, companyID, h.Log)

	view, err := populate.One(ctx, h.DB, rv)
	if err != nil {
		h.Log.Error("review create populate failed", zap.Error(err))
		httpjson.Write(w, http.StatusCreated, map[string]any{"success": true, "review": rv})
		return
	}
	httpjson.Write(w, http.StatusCreated, reviewResponse{
		Success: true,
		Message: "Review created successfully",
		Review:  view,
	})
}
