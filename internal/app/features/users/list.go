// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"
	"strconv"

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

// ServeList handles GET /api/users (admin): role/branch/graduationYear
// filters with pagination, newest accounts first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{"is_active": true}
	if role := normalize.Role(r.URL.Query().Get("role")); role != "" {
		filter["role"] = role
	}
	if branch := normalize.QueryParam(r.URL.Query().Get("branch")); branch != "" {
		filter["branch"] = branch
	}
	if s := r.URL.Query().Get("graduationYear"); s != "" {
		if year, err := strconv.Atoi(s); err == nil {
			filter["graduation_year"] = year
		}
	}

	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Users.Count(ctx, filter)
	if err != nil {
		h.Log.Error("user count failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load users")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit64())

	items, err := h.Users.Find(ctx, filter, opts)
	if err != nil {
		h.Log.Error("user list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not load users")
		return
	}

	httpjson.Write(w, http.StatusOK, listResponse{
		Success:    true,
		Users:      items,
		Pagination: paging.BuildMeta(p, total),
	})
}

// ServeGet handles GET /api/users/{id}. Public profile; the password hash
// is excluded by the model's JSON shape, not by projection.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetActiveByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Write(w, http.StatusOK, userResponse{Success: true, User: *u})
}
