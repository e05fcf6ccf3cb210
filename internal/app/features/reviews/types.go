// internal/app/features/reviews/types.go
package reviews

import (
	"github.com/dalemusser/alumnivoice/internal/app/store/queries/populate"
	"github.com/dalemusser/alumnivoice/internal/app/system/paging"
)

type createInput struct {
	Company         string   `json:"company" validate:"required" label:"Company"`
	OverallRating   int      `json:"overallRating" validate:"required,min=1,max=5" label:"Overall rating"`
	WorkCulture     int      `json:"workCulture" validate:"required,min=1,max=5" label:"Work culture rating"`
	WorkLifeBalance int      `json:"workLifeBalance" validate:"required,min=1,max=5" label:"Work-life balance rating"`
	CareerGrowth    int      `json:"careerGrowth" validate:"required,min=1,max=5" label:"Career growth rating"`
	Compensation    int      `json:"compensation" validate:"required,min=1,max=5" label:"Compensation rating"`
	Management      int      `json:"management" validate:"required,min=1,max=5" label:"Management rating"`
	Title           string   `json:"title" validate:"required,min=5,max=100" label:"Title"`
	Content         string   `json:"content" validate:"required,min=50,max=2000" label:"Content"`
	Pros            []string `json:"pros" validate:"omitempty,dive,max=200" label:"Pros"`
	Cons            []string `json:"cons" validate:"omitempty,dive,max=200" label:"Cons"`
	Recommendations string   `json:"recommendations" validate:"required,oneof=Yes No Maybe" label:"Recommendation"`
	IsAnonymous     bool     `json:"isAnonymous"`
	LinkedinProfile string   `json:"linkedinProfile" validate:"omitempty,max=200" label:"LinkedIn profile"`
}

// updateInput uses pointers so absent fields are left unchanged; author and
// company are immutable and deliberately absent.
type updateInput struct {
	OverallRating   *int      `json:"overallRating" validate:"omitempty,min=1,max=5" label:"Overall rating"`
	WorkCulture     *int      `json:"workCulture" validate:"omitempty,min=1,max=5" label:"Work culture rating"`
	WorkLifeBalance *int      `json:"workLifeBalance" validate:"omitempty,min=1,max=5" label:"Work-life balance rating"`
	CareerGrowth    *int      `json:"careerGrowth" validate:"omitempty,min=1,max=5" label:"Career growth rating"`
	Compensation    *int      `json:"compensation" validate:"omitempty,min=1,max=5" label:"Compensation rating"`
	Management      *int      `json:"management" validate:"omitempty,min=1,max=5" label:"Management rating"`
	Title           *string   `json:"title" validate:"omitempty,min=5,max=100" label:"Title"`
	Content         *string   `json:"content" validate:"omitempty,min=50,max=2000" label:"Content"`
	Pros            *[]string `json:"pros" validate:"omitempty,dive,max=200" label:"Pros"`
	Cons            *[]string `json:"cons" validate:"omitempty,dive,max=200" label:"Cons"`
	Recommendations *string   `json:"recommendations" validate:"omitempty,oneof=Yes No Maybe" label:"Recommendation"`
	IsAnonymous     *bool     `json:"isAnonymous"`
	LinkedinProfile *string   `json:"linkedinProfile" validate:"omitempty,max=200" label:"LinkedIn profile"`
}

type listResponse struct {
	Success    bool                  `json:"success"`
	Reviews    []populate.ReviewView `json:"reviews"`
	Pagination paging.Meta           `json:"pagination"`
}

type companyListResponse struct {
	Success bool                  `json:"success"`
	Total   int                   `json:"total"`
	Reviews []populate.ReviewView `json:"reviews"`
}

type reviewResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Review  populate.ReviewView `json:"review"`
}

type helpfulResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	HelpfulCount int    `json:"helpfulCount"`
	HasVoted     bool   `json:"hasVoted"`
}
