// internal/app/features/companies/types.go
package companies

import (
	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	"github.com/dalemusser/alumnivoice/internal/app/system/paging"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
)

type createInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100" label:"Name"`
	Description string   `json:"description" validate:"omitempty,max=1000" label:"Description"`
	Industry    string   `json:"industry" validate:"required" label:"Industry"`
	Website     string   `json:"website" validate:"omitempty,url" label:"Website"`
	Logo        string   `json:"logo" validate:"omitempty,max=500" label:"Logo"`
	Location    string   `json:"location" validate:"omitempty,max=100" label:"Location"`
	CompanySize string   `json:"companySize" validate:"omitempty" label:"Company size"`
	FoundedYear int      `json:"foundedYear" validate:"omitempty,gte=1800" label:"Founded year"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50" label:"Tags"`
}

// updateInput mirrors createInput with pointers so absent fields stay
// unchanged. Derived rating fields are not accepted at all; whatever a
// client sends for them is dropped by construction.
type updateInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=2,max=100" label:"Name"`
	Description *string   `json:"description" validate:"omitempty,max=1000" label:"Description"`
	Industry    *string   `json:"industry" validate:"omitempty" label:"Industry"`
	Website     *string   `json:"website" validate:"omitempty,url" label:"Website"`
	Logo        *string   `json:"logo" validate:"omitempty,max=500" label:"Logo"`
	Location    *string   `json:"location" validate:"omitempty,max=100" label:"Location"`
	CompanySize *string   `json:"companySize" validate:"omitempty" label:"Company size"`
	FoundedYear *int      `json:"foundedYear" validate:"omitempty,gte=1800" label:"Founded year"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,max=50" label:"Tags"`
}

type listResponse struct {
	Success    bool             `json:"success"`
	Companies  []models.Company `json:"companies"`
	Pagination paging.Meta      `json:"pagination"`
}

type companyResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Company models.Company `json:"company"`
}

type statsOverview struct {
	TotalCompanies int64                        `json:"totalCompanies"`
	TopRated       []models.Company             `json:"topRated"`
	Industries     []companystore.IndustryCount `json:"industries"`
}

type statsResponse struct {
	Success bool          `json:"success"`
	Stats   statsOverview `json:"stats"`
}
