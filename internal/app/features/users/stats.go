// internal/app/features/users/stats.go
package users

import (
	"context"
	"math"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServeStatsOverview handles GET /api/users/stats/overview: totals,
// verification rate, role/branch/year aggregates, and recent alumni.
func (h *Handler) ServeStatsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Users.Count(ctx, bson.M{"is_active": true})
	if err != nil {
		h.statsError(w, "count", err)
		return
	}
	verified, err := h.Users.Count(ctx, bson.M{"is_active": true, "is_verified": true})
	if err != nil {
		h.statsError(w, "verified count", err)
		return
	}

	roles, err := h.Users.CountsBy(ctx, "role")
	if err != nil {
		h.statsError(w, "roles", err)
		return
	}
	branches, err := h.Users.CountsBy(ctx, "branch")
	if err != nil {
		h.statsError(w, "branches", err)
		return
	}
	years, err := h.Users.CountsByYear(ctx, 5)
	if err != nil {
		h.statsError(w, "years", err)
		return
	}
	recent, err := h.Users.RecentAlumni(ctx, 5)
	if err != nil {
		h.statsError(w, "recent alumni", err)
		return
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(verified)/float64(total)*1000) / 10
	}

	httpjson.Write(w, http.StatusOK, statsResponse{
		Success: true,
		Stats: statsOverview{
			TotalUsers:       total,
			VerifiedUsers:    verified,
			VerificationRate: rate,
			Roles:            roles,
			Branches:         branches,
			GraduationYears:  years,
			RecentAlumni:     recent,
		},
	})
}

func (h *Handler) statsError(w http.ResponseWriter, step string, err error) {
	h.Log.Error("user stats: "+step, zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "Could not load stats")
}
