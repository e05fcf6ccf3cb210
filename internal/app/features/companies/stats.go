// internal/app/features/companies/stats.go
package companies

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServeStatsOverview handles GET /api/companies/stats/overview: total
// company count, the top five by rating, and per-industry counts.
func (h *Handler) ServeStatsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Companies.Count(ctx, bson.M{})
	if err != nil {
		h.Log.Error("company stats: count", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load stats")
		return
	}

	top, err := h.Companies.TopRated(ctx, 5)
	if err != nil {
		h.Log.Error("company stats: top rated", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load stats")
		return
	}

	industries, err := h.Companies.IndustryCounts(ctx)
	if err != nil {
		h.Log.Error("company stats: industries", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load stats")
		return
	}

	httpjson.Write(w, http.StatusOK, statsResponse{
		Success: true,
		Stats: statsOverview{
			TotalCompanies: total,
			TopRated:       top,
			Industries:     industries,
		},
	})
}
