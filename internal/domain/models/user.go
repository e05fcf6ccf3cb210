// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents students, alumni, and admins.
//
// NOTE:
//   - Reviews are not embedded on User. Use the reviews collection to
//     discover a user's reviews (filtered by author).
//   - PasswordHash is never serialized to JSON; every handler that returns
//     a User returns the public profile by construction.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	Role           string             `bson:"role" json:"role"`          // student | alumni | admin
	UserType       string             `bson:"user_type" json:"userType"` // reader | writer
	GraduationYear int                `bson:"graduation_year" json:"graduationYear"`
	Branch         string             `bson:"branch" json:"branch"`

	CurrentCompany  string `bson:"current_company,omitempty" json:"currentCompany,omitempty"`
	Designation     string `bson:"designation,omitempty" json:"designation,omitempty"`
	Location        string `bson:"location,omitempty" json:"location,omitempty"`
	LinkedinProfile string `bson:"linkedin_profile,omitempty" json:"linkedinProfile,omitempty"`
	Phone           string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture  string `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`

	IsVerified bool `bson:"is_verified" json:"isVerified"`
	IsActive   bool `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Roles a user can hold. Registration always starts at student; the
// onboarding profile update promotes to alumni.
const (
	RoleStudent = "student"
	RoleAlumni  = "alumni"
	RoleAdmin   = "admin"
)

// User types. Writers are alumni who contribute reviews; readers browse.
const (
	UserTypeReader = "reader"
	UserTypeWriter = "writer"
)

// Branches is the closed set of academic branches accepted at registration.
var Branches = []string{
	"Computer Science",
	"Information Technology",
	"Electronics",
	"Mechanical",
	"Civil",
	"Chemical",
	"Other",
}

// ValidBranch reports whether b is one of the accepted branches.
func ValidBranch(b string) bool {
	for _, v := range Branches {
		if v == b {
			return true
		}
	}
	return false
}
