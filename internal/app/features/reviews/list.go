// internal/app/features/reviews/list.go
package reviews

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/store/queries/populate"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/paging"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeList handles GET /api/reviews with optional company/author filters,
// a sort key (newest | oldest | rating | helpful), and pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var filter reviewstore.ListFilter

	if s := r.URL.Query().Get("company"); s != "" {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid company id")
			return
		}
		filter.Company = id
	}
	if s := r.URL.Query().Get("author"); s != "" {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid author id")
			return
		}
		filter.Author = id
	}

	p := paging.Parse(r)
	sort := reviewstore.SortSpec(r.URL.Query().Get("sort"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Reviews.List(ctx, filter, sort, p.Skip(), p.Limit64())
	if err != nil {
		h.Log.Error("review list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load reviews")
		return
	}

	views, err := populate.Reviews(ctx, h.DB, items)
	if err != nil {
		h.Log.Error("review list populate failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load reviews")
		return
	}

	httpjson.Write(w, http.StatusOK, listResponse{
		Success:    true,
		Reviews:    views,
		Pagination: paging.BuildMeta(p, total),
	})
}

// ServeListByCompany handles GET /api/reviews/company/{companyId}: every
// active review for the company, newest first, with the match total.
func (h *Handler) ServeListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "companyId"))
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Reviews.ListByCompany(ctx, companyID)
	if err != nil {
		h.Log.Error("company review list failed",
			zap.String("company_id", companyID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load reviews")
		return
	}

	views, err := populate.Reviews(ctx, h.DB, items)
	if err != nil {
		h.Log.Error("company review populate failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load reviews")
		return
	}

	httpjson.Write(w, http.StatusOK, companyListResponse{
		Success: true,
		Total:   len(views),
		Reviews: views,
	})
}

// ServeGet handles GET /api/reviews/{id}. Malformed ids and soft-deleted
// reviews both read as "not found".
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "Review not found")
		return
	}

	view, err := populate.One(ctx, h.DB, *rv)
	if err != nil {
		h.Log.Error("review populate failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load review")
		return
	}

	httpjson.Write(w, http.StatusOK, reviewResponse{Success: true, Review: view})
}
