package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures inserts well-formed documents directly, bypassing the stores,
// so store and handler tests control their starting state exactly.
type Fixtures struct {
	t  *testing.T
	db *mongo.Database
}

// NewFixtures builds a fixture helper for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, db: db}
}

// UserOpt mutates a fixture user before insert.
type UserOpt func(*models.User)

// WithRole sets the user's role.
func WithRole(role string) UserOpt {
	return func(u *models.User) { u.Role = role }
}

// Inactive marks the user deactivated.
func Inactive() UserOpt {
	return func(u *models.User) { u.IsActive = false }
}

// CreateUser inserts an active student with a known password ("secret1")
// unless options say otherwise.
func (f *Fixtures) CreateUser(email string, opts ...UserOpt) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("fixtures: hash password: %v", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:             primitive.NewObjectID(),
		Name:           "Test User",
		NameCI:         text.Fold("Test User"),
		Email:          email,
		PasswordHash:   string(hash),
		Role:           models.RoleStudent,
		UserType:       models.UserTypeReader,
		GraduationYear: 2022,
		Branch:         "Computer Science",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(&u)
	}

	ctx, cancel := TestContext()
	defer cancel()
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("fixtures: insert user: %v", err)
	}
	return u
}

// CreateCompany inserts an active company with zeroed derived fields.
func (f *Fixtures) CreateCompany(name, location string) models.Company {
	f.t.Helper()

	now := time.Now().UTC()
	co := models.Company{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Industry:   "Technology",
		Location:   location,
		LocationCI: text.Fold(location),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	ctx, cancel := TestContext()
	defer cancel()
	if _, err := f.db.Collection("companies").InsertOne(ctx, co); err != nil {
		f.t.Fatalf("fixtures: insert company: %v", err)
	}
	return co
}

// CreateReview inserts an active review by author for company with the
// given overall rating; sub-ratings mirror the overall.
func (f *Fixtures) CreateReview(author, company primitive.ObjectID, overall int) models.Review {
	f.t.Helper()

	now := time.Now().UTC()
	rv := models.Review{
		ID:              primitive.NewObjectID(),
		AuthorID:        author,
		CompanyID:       company,
		OverallRating:   overall,
		WorkCulture:     overall,
		WorkLifeBalance: overall,
		CareerGrowth:    overall,
		Compensation:    overall,
		Management:      overall,
		Title:           "A fixture review",
		Content:         "This review exists only to give tests a realistic starting document to work with.",
		Pros:            []string{},
		Cons:            []string{},
		Recommendations: "Yes",
		HelpfulUsers:    []primitive.ObjectID{},
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx, cancel := TestContext()
	defer cancel()
	if _, err := f.db.Collection("reviews").InsertOne(ctx, rv); err != nil {
		f.t.Fatalf("fixtures: insert review: %v", err)
	}
	return rv
}
