// internal/app/features/authapi/password.go
package authapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleChangePassword verifies the current password and stores a new hash
// (PUT /api/auth/change-password). Existing tokens stay valid until expiry.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var in changePasswordInput
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

	u, err := h.Users.GetActiveByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)) != nil {
		httpjson.Error(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("change-password: hash", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Password change failed")
		return
	}
	if err := h.Users.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		h.Log.Error("change-password: store", zap.String("user_id", p.ID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Password change failed")
		return
	}

	httpjson.OK(w, "Password changed successfully")
}
