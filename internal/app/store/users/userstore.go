package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/alumnivoice/internal/app/system/normalize"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "student"|"alumni"|"admin"`)
	errBadUserType    = errors.New(`userType must be "reader"|"writer"`)
	errBadBranch      = errors.New("branch is not one of the accepted branches")
)

// Create inserts a new user after normalizing & validating fields.
// The caller supplies PasswordHash already hashed.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	// Normalize core fields
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.NameCI = text.Fold(u.Name)
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.RoleStudent
	}
	if u.UserType == "" {
		u.UserType = models.UserTypeReader
	}
	u.IsActive = true

	switch u.Role {
	case models.RoleStudent, models.RoleAlumni, models.RoleAdmin:
		// ok
	default:
		return models.User{}, errBadRole
	}

	switch u.UserType {
	case models.UserTypeReader, models.UserTypeWriter:
		// ok
	default:
		return models.User{}, errBadUserType
	}

	if !models.ValidBranch(u.Branch) {
		return models.User{}, errBadBranch
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID regardless of active state.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetActiveByID loads an active user by ObjectID.
// Returns mongo.ErrNoDocuments for missing or deactivated users.
func (s *Store) GetActiveByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email, including
// deactivated accounts (login distinguishes "wrong password" from
// "account is deactivated"). Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the self-service profile fields. Empty strings mean
// "leave unchanged" (partial update).
type ProfileUpdate struct {
	Name            string
	CurrentCompany  string
	Designation     string
	Location        string
	LinkedinProfile string
}

// UpdateProfile applies the supplied profile fields and refreshes UpdatedAt.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != "" {
		set["name"] = normalize.Name(upd.Name)
		set["name_ci"] = text.Fold(upd.Name)
	}
	if upd.CurrentCompany != "" {
		set["current_company"] = upd.CurrentCompany
	}
	if upd.Designation != "" {
		set["designation"] = upd.Designation
	}
	if upd.Location != "" {
		set["location"] = upd.Location
	}
	if upd.LinkedinProfile != "" {
		set["linkedin_profile"] = upd.LinkedinProfile
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// UpdateOnboarding sets role and/or userType chosen during onboarding.
// Empty values are left unchanged.
func (s *Store) UpdateOnboarding(ctx context.Context, id primitive.ObjectID, role, userType string) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if role != "" {
		if role != models.RoleStudent && role != models.RoleAlumni {
			return errBadRole
		}
		set["role"] = role
	}
	if userType != "" {
		if userType != models.UserTypeReader && userType != models.UserTypeWriter {
			return errBadUserType
		}
		set["user_type"] = userType
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// UpdatePasswordHash replaces the stored credential hash.
func (s *Store) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
	}})
	return err
}

// SetVerified marks a user verified (admin action).
func (s *Store) SetVerified(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_verified": true,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}

// SetActive flips the soft-disable flag (admin action). Users are never
// hard-deleted.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// Find returns users matching the given filter with optional find options.
// The caller builds the filter and options (pagination, sorting, projection).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.User, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of users matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// GroupCount is one bucket of a $group aggregate keyed by a string field.
type GroupCount struct {
	Key   string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// YearCount is one bucket of a $group aggregate keyed by graduation year.
type YearCount struct {
	Year  int   `bson:"_id" json:"_id"`
	Count int64 `bson:"count" json:"count"`
}

// CountsBy groups active users by the given field, most common first.
func (s *Store) CountsBy(ctx context.Context, field string) ([]GroupCount, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"is_active": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []GroupCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountsByYear groups active users by graduation year, newest years first,
// capped at limit buckets.
func (s *Store) CountsByYear(ctx context.Context, limit int) ([]YearCount, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"is_active": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$graduation_year", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []YearCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentAlumni returns the most recently registered active alumni.
func (s *Store) RecentAlumni(ctx context.Context, limit int) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return s.Find(ctx, bson.M{"is_active": true, "role": models.RoleAlumni}, opts)
}
