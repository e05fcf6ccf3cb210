// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleLogin verifies credentials and issues a token (POST /api/auth/login).
// Wrong email and wrong password share one message so the endpoint does not
// confirm which emails exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Error("login: lookup user", zap.Error(err))
		}
		httpjson.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !u.IsActive {
		httpjson.Error(w, http.StatusBadRequest, "Account is deactivated")
		return
	}

	tok, err := h.Auth.IssueToken(u.ID)
	if err != nil {
		h.Log.Error("login: issue token", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}

	httpjson.Write(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		Token:   tok,
		User:    *u,
	})
}
