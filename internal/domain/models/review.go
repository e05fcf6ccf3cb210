// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one alumna's evaluation of one company. AuthorID and CompanyID
// are immutable after creation. IsActive is the soft-delete flag: inactive
// reviews stay in storage but are excluded from listings and from company
// rating aggregation.
//
// At most one active review may exist per (author, company) pair. The
// stores enforce this with a pre-insert existence check, not a unique
// index, matching the behavior this service replaces.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID  primitive.ObjectID `bson:"author" json:"author"`
	CompanyID primitive.ObjectID `bson:"company" json:"company"`

	OverallRating   int `bson:"overall_rating" json:"overallRating"`
	WorkCulture     int `bson:"work_culture" json:"workCulture"`
	WorkLifeBalance int `bson:"work_life_balance" json:"workLifeBalance"`
	CareerGrowth    int `bson:"career_growth" json:"careerGrowth"`
	Compensation    int `bson:"compensation" json:"compensation"`
	Management      int `bson:"management" json:"management"`

	Title           string   `bson:"title" json:"title"`
	Content         string   `bson:"content" json:"content"`
	Pros            []string `bson:"pros" json:"pros"`
	Cons            []string `bson:"cons" json:"cons"`
	Recommendations string   `bson:"recommendations" json:"recommendations"` // Yes | No | Maybe
	IsAnonymous     bool     `bson:"is_anonymous" json:"isAnonymous"`
	LinkedinProfile string   `bson:"linkedin_profile,omitempty" json:"linkedinProfile,omitempty"`

	IsVerified   bool                 `bson:"is_verified" json:"isVerified"`
	HelpfulCount int                  `bson:"helpful_count" json:"helpfulCount"`
	HelpfulUsers []primitive.ObjectID `bson:"helpful_users" json:"-"`

	IsActive bool `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Recommendation verdicts.
var Recommendations = []string{"Yes", "No", "Maybe"}

// ValidRecommendation reports whether s is Yes, No, or Maybe.
func ValidRecommendation(s string) bool {
	for _, v := range Recommendations {
		if v == s {
			return true
		}
	}
	return false
}

// ValidRating reports whether n is an integer rating in [1,5].
func ValidRating(n int) bool { return n >= 1 && n <= 5 }
