// internal/app/features/authapi/initialreview.go
package authapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/dalemusser/alumnivoice/internal/app/store/queries/companystats"
	"github.com/dalemusser/alumnivoice/internal/app/store/queries/populate"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/sanitize"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreateInitialReview is the onboarding bootstrap
// (POST /api/auth/create-initial-review). It find-or-creates the company by
// case-insensitive (name, location) and writes a first review whose overall
// rating is the rounded mean of the five sub-ratings. Title, pros/cons, and
// recommendation are synthesized; the title carries the company name as the
// caller spelled it, even when the fuzzy match lands on an existing company.
func (h *Handler) HandleCreateInitialReview(w http.ResponseWriter, r *http.Request) {
	var in initialReviewInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}
	if in.JoinYear > time.Now().Year() {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Join year", Message: "Join year cannot be in the future"},
		})
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

	co, created, err := h.Companies.FindOrCreate(ctx, in.CompanyName, in.Location, h.DefaultIndustry)
	if err != nil {
		h.Log.Error("initial review: find-or-create company",
			zap.String("company_name", in.CompanyName), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not create review")
		return
	}
	if created {
		h.Log.Info("initial review: company created",
			zap.String("company_id", co.ID.Hex()),
			zap.String("name", co.Name))
	}

	sum := in.WorkCulture + in.WorkLifeBalance + in.CareerGrowth + in.Compensation + in.Management
	overall := int(math.Round(float64(sum) / 5))

	rv, err := h.Reviews.Create(ctx, models.Review{
		AuthorID:        authorID,
		CompanyID:       co.ID,
		OverallRating:   overall,
		WorkCulture:     in.WorkCulture,
		WorkLifeBalance: in.WorkLifeBalance,
		CareerGrowth:    in.CareerGrowth,
		Compensation:    in.Compensation,
		Management:      in.Management,
		Title:           fmt.Sprintf("Review of %s", in.CompanyName),
		Content:         sanitize.Text(in.Review),
		Pros:            []string{},
		Cons:            []string{},
		Recommendations: "Yes",
	})
	if err != nil {
		if errors.Is(err, reviewstore.ErrDuplicateReview) {
			httpjson.Error(w, http.StatusBadRequest, "You have already reviewed this company")
			return
		}
		h.Log.Error("initial review: create", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not create review")
		return
	}

	companystats.RecomputeLogged(ctx, h.DB, co.ID, h.Log)

	view, err := populate.One(ctx, h.DB, rv)
	if err != nil {
		h.Log.Error("initial review: populate", zap.Error(err))
		httpjson.Write(w, http.StatusCreated, map[string]any{"success": true, "review": rv})
		return
	}
	httpjson.Write(w, http.StatusCreated, map[string]any{"success": true, "review": view})
}
