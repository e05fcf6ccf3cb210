// internal/domain/models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is an employer profile. AverageRating and TotalReviews are
// derived fields: they are recomputed as a side effect of review mutations
// (see store/queries/companystats) and are never written by clients.
//
// NameCI and LocationCI are stored folds used for the case-insensitive
// find-or-create lookup in the initial-review bootstrap.
type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Industry    string             `bson:"industry" json:"industry"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	LocationCI  string             `bson:"location_ci,omitempty" json:"-"`
	CompanySize string             `bson:"company_size,omitempty" json:"companySize,omitempty"`
	FoundedYear int                `bson:"founded_year,omitempty" json:"foundedYear,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	AverageRating  float64 `bson:"average_rating" json:"averageRating"`
	TotalReviews   int     `bson:"total_reviews" json:"totalReviews"`
	AveragePackage float64 `bson:"average_package" json:"averagePackage"`

	IsActive bool `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Industries is the closed industry enum. The bootstrap path creates
// companies with a configurable default (Technology unless overridden).
var Industries = []string{
	"Technology",
	"Finance",
	"Healthcare",
	"Manufacturing",
	"Consulting",
	"Retail",
	"Education",
	"Other",
}

// ValidIndustry reports whether s is one of the accepted industries.
func ValidIndustry(s string) bool {
	for _, v := range Industries {
		if v == s {
			return true
		}
	}
	return false
}

// CompanySizes is the accepted set of size brackets.
var CompanySizes = []string{"1-50", "51-200", "201-500", "501-1000", "1001-5000", "5000+"}

// ValidCompanySize reports whether s is one of the accepted size brackets.
func ValidCompanySize(s string) bool {
	for _, v := range CompanySizes {
		if v == s {
			return true
		}
	}
	return false
}
