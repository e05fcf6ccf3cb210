// internal/app/features/authapi/register.go
package authapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/normalize"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleRegister creates a new account (POST /api/auth/register). Every
// registration starts as student/reader; onboarding promotes later.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}

	email := normalize.Email(in.Email)
	if h.EmailDomain != "" && !strings.HasSuffix(email, "@"+h.EmailDomain) {
		httpjson.Error(w, http.StatusBadRequest,
			"Registration is restricted to @"+h.EmailDomain+" email addresses")
		return
	}
	if !models.ValidBranch(in.Branch) {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Branch", Message: "Branch is not one of the accepted branches"},
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("register: hash password", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Name:           in.Name,
		Email:          email,
		PasswordHash:   string(hash),
		GraduationYear: in.GraduationYear,
		Branch:         in.Branch,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		h.Log.Error("register: create user", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	tok, err := h.Auth.IssueToken(u.ID)
	if err != nil {
		h.Log.Error("register: issue token", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	httpjson.Write(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "Registration successful",
		Token:   tok,
		User:    u,
	})
}
