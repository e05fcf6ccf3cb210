// internal/app/features/companies/crud.go
package companies

import (
	"context"
	"errors"
	"net/http"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	"github.com/dalemusser/alumnivoice/internal/app/system/httpjson"
	"github.com/dalemusser/alumnivoice/internal/app/system/inputval"
	"github.com/dalemusser/alumnivoice/internal/app/system/sanitize"
	"github.com/dalemusser/alumnivoice/internal/app/system/timeouts"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate adds a company (POST /api/companies). Alumni and admins
// only; a same-named active company is rejected.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}
	if !models.ValidIndustry(in.Industry) {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Industry", Message: "Industry is not one of the accepted industries"},
		})
		return
	}
	if in.CompanySize != "" && !models.ValidCompanySize(in.CompanySize) {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Company size", Message: "Company size is not one of the accepted brackets"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	co, err := h.Companies.Create(ctx, models.Company{
		Name:        in.Name,
		Description: sanitize.Text(in.Description),
		Industry:    in.Industry,
		Website:     in.Website,
		Logo:        in.Logo,
		Location:    in.Location,
		CompanySize: in.CompanySize,
		FoundedYear: in.FoundedYear,
		Tags:        sanitize.TextSlice(in.Tags),
	})
	if err != nil {
		if errors.Is(err, companystore.ErrDuplicateName) {
			httpjson.Error(w, http.StatusBadRequest, "A company with this name already exists")
			return
		}
		h.Log.Error("company create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not create company")
		return
	}

	httpjson.Write(w, http.StatusCreated, companyResponse{
		Success: true,
		Message: "Company created successfully",
		Company: co,
	})
}

// HandleUpdate applies a partial update (PUT /api/companies/{id}).
// Derived fields never enter the $set: updateInput has no way to express
// them, so a client sending averageRating/totalReviews is silently ignored.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	var in updateInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.ValidationFailed(w, res.Errors)
		return
	}
	if in.Industry != nil && !models.ValidIndustry(*in.Industry) {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Industry", Message: "Industry is not one of the accepted industries"},
		})
		return
	}
	if in.CompanySize != nil && *in.CompanySize != "" && !models.ValidCompanySize(*in.CompanySize) {
		httpjson.ValidationFailed(w, []inputval.FieldError{
			{Field: "Company size", Message: "Company size is not one of the accepted brackets"},
		})
		return
	}

	set := buildUpdateSet(in)
	if len(set) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	co, err := h.Companies.Update(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "Company not found")
			return
		}
		h.Log.Error("company update failed", zap.String("company_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not update company")
		return
	}

	httpjson.Write(w, http.StatusOK, companyResponse{
		Success: true,
		Message: "Company updated successfully",
		Company: *co,
	})
}

func buildUpdateSet(in updateInput) bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = sanitize.Text(*in.Description)
	}
	if in.Industry != nil {
		set["industry"] = *in.Industry
	}
	if in.Website != nil {
		set["website"] = *in.Website
	}
	if in.Logo != nil {
		set["logo"] = *in.Logo
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.CompanySize != nil {
		set["company_size"] = *in.CompanySize
	}
	if in.FoundedYear != nil {
		set["founded_year"] = *in.FoundedYear
	}
	if in.Tags != nil {
		set["tags"] = sanitize.TextSlice(*in.Tags)
	}
	return set
}

// HandleDelete soft-deletes a company (DELETE /api/companies/{id}). Its
// reviews stay active and keep appearing in author listings.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Company not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Companies.SoftDelete(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "Company not found")
			return
		}
		h.Log.Error("company delete failed", zap.String("company_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Could not delete company")
		return
	}

	httpjson.OK(w, "Company deleted successfully")
}
