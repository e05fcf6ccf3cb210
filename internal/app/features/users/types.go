// internal/app/features/users/types.go
package users

import (
	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/paging"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
)

type listResponse struct {
	Success    bool          `json:"success"`
	Users      []models.User `json:"users"`
	Pagination paging.Meta   `json:"pagination"`
}

type userResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    models.User `json:"user"`
}

type statsOverview struct {
	TotalUsers       int64                  `json:"totalUsers"`
	VerifiedUsers    int64                  `json:"verifiedUsers"`
	VerificationRate float64                `json:"verificationRate"`
	Roles            []userstore.GroupCount `json:"roles"`
	Branches         []userstore.GroupCount `json:"branches"`
	GraduationYears  []userstore.YearCount  `json:"graduationYears"`
	RecentAlumni     []models.User          `json:"recentAlumni"`
}

type statsResponse struct {
	Success bool          `json:"success"`
	Stats   statsOverview `json:"stats"`
}
