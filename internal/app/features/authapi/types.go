// internal/app/features/authapi/types.go
package authapi

import (
	"github.com/dalemusser/alumnivoice/internal/domain/models"
)

type registerInput struct {
	Name           string `json:"name" validate:"required,min=2,max=100" label:"Name"`
	Email          string `json:"email" validate:"required,email" label:"Email"`
	Password       string `json:"password" validate:"required,min=6" label:"Password"`
	GraduationYear int    `json:"graduationYear" validate:"required,gte=1990" label:"Graduation year"`
	Branch         string `json:"branch" validate:"required" label:"Branch"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

type profileInput struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=100" label:"Name"`
	CurrentCompany  string `json:"currentCompany" validate:"omitempty,max=100" label:"Current company"`
	Designation     string `json:"designation" validate:"omitempty,max=100" label:"Designation"`
	Location        string `json:"location" validate:"omitempty,max=100" label:"Location"`
	LinkedinProfile string `json:"linkedinProfile" validate:"omitempty,max=200" label:"LinkedIn profile"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required" label:"Current password"`
	NewPassword     string `json:"newPassword" validate:"required,min=6" label:"New password"`
}

type onboardingInput struct {
	Role     string `json:"role" validate:"omitempty,oneof=student alumni" label:"Role"`
	UserType string `json:"userType" validate:"omitempty,oneof=reader writer" label:"User type"`
}

type initialReviewInput struct {
	CompanyName     string  `json:"companyName" validate:"required,min=2,max=100" label:"Company name"`
	Location        string  `json:"location" validate:"required,min=2,max=100" label:"Location"`
	JoinYear        int     `json:"joinYear" validate:"required,gte=2000" label:"Join year"`
	Salary          float64 `json:"salary" validate:"gte=0" label:"Salary"`
	Review          string  `json:"review" validate:"required,min=50,max=2000" label:"Review"`
	WorkCulture     int     `json:"workCulture" validate:"required,min=1,max=5" label:"Work culture rating"`
	WorkLifeBalance int     `json:"workLifeBalance" validate:"required,min=1,max=5" label:"Work-life balance rating"`
	CareerGrowth    int     `json:"careerGrowth" validate:"required,min=1,max=5" label:"Career growth rating"`
	Compensation    int     `json:"compensation" validate:"required,min=1,max=5" label:"Compensation rating"`
	Management      int     `json:"management" validate:"required,min=1,max=5" label:"Management rating"`
}

// authResponse carries a signed token plus the public profile.
type authResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// userResponse wraps a single public profile.
type userResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}
