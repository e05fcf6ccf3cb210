// internal/app/features/authapi/profile.go
package authapi

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeMe returns the signed-in user's profile (GET /api/auth/me).
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.CurrentUser(r)
	id, err := p.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
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

// HandleUpdateProfile applies a partial profile update
// (PUT /api/auth/profile). Absent fields stay unchanged.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in profileInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	p, _ := auth.CurrentUser(r)
	id, err := p.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Users.UpdateProfile(ctx, id, userstore.ProfileUpdate{
		Name:            in.Name,
		CurrentCompany:  in.CurrentCompany,
		Designation:     in.Designation,
		Location:        in.Location,
		LinkedinProfile: in.LinkedinProfile,
	})
	if err != nil {
		h.Log.Error("profile update failed", zap.String("user_id", p.ID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	u, err := h.Users.GetActiveByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Write(w, http.StatusOK, userResponse{Success: true, User: *u})
}

// HandleOnboarding sets role and user type after signup
// (PUT /api/auth/update-profile).
func (h *Handler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	var in onboardingInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	p, _ := auth.CurrentUser(r)
	id, err := p.ObjectID()
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Users.UpdateOnboarding(ctx, id, in.Role, in.UserType); err != nil {
		h.Log.Error("onboarding update failed", zap.String("user_id", p.ID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Profile update failed")
		return
	}

	u, err := h.Users.GetActiveByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Write(w, http.StatusOK, userResponse{Success: true, User: *u})
}
