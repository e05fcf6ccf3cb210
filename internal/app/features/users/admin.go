// internal/app/features/users/admin.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleVerify marks a user verified (PUT /api/users/{id}/verify).
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, "verify")
}

// HandleActivate re-enables an account (PUT /api/users/{id}/activate).
func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, "activate")
}

// HandleDeactivate disables an account (PUT /api/users/{id}/deactivate).
// The user's reviews stay active; deactivation only blocks sign-in.
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, "deactivate")
}

func (h *Handler) setFlag(w http.ResponseWriter, r *http.Request, action string) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.GetByID(ctx, id); err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	var msg string
	switch action {
	case "verify":
		err = h.Users.SetVerified(ctx, id)
		msg = "User verified successfully"
	case "activate":
		err = h.Users.SetActive(ctx, id, true)
		msg = "User activated successfully"
	case "deactivate":
		err = h.Users.SetActive(ctx, id, false)
		msg = "User deactivated successfully"
	}
	if err != nil {
		h.Log.Error("user moderation failed",
			zap.String("action", action),
			zap.String("user_id", id.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not update user")
		return
	}

	httpjson.OK(w, msg)
}
