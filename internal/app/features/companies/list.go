// internal/app/features/companies/list.go
package companies

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/normalize"
	"github.com/dalemusser/alumnivoice/internal/app/system/paging"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ServeList handles GET /api/companies with optional text search and
// industry filter, best-rated first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if q := normalize.QueryParam(r.URL.Query().Get("search")); q != "" {
		filter["$text"] = bson.M{"$search": q}
	}
	if ind := normalize.QueryParam(r.URL.Query().Get("industry")); ind != "" {
		filter["industry"] = ind
	}

	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Companies.Count(ctx, copyFilter(filter))
	if err != nil {
		h.Log.Error("company count failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load companies")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "average_rating", Value: -1}, {Key: "total_reviews", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit64())

	items, err := h.Companies.Find(ctx, filter, opts)
	if err != nil {
		h.Log.Error("company list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load companies")
		return
	}

	httpjson.Write(w, http.StatusOK, listResponse{
		Success:    true,
		Companies:  items,
		Pagination: paging.BuildMeta(p, total),
	})
}

// copyFilter duplicates a filter map; the store mutates its argument when
// adding the is_active clause.
func copyFilter(in bson.M) bson.M {
	out := bson.M{}
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ServeGet handles GET /api/companies/{id}. Malformed ids and soft-deleted
// companies both read as "not found".
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	co, err := h.Companies.GetByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}
	httpjson.Write(w, http.StatusOK, companyResponse{Success: true, Company: *co})
}
