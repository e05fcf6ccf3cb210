package companystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/alumnivoice/internal/app/system/normalize"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
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
	return &Store{c: db.Collection("companies")}
}

var (
	// ErrDuplicateName is returned when a company with the same
	// case-insensitive name already exists.
	ErrDuplicateName = errors.New("a company with this name already exists")
	errBadIndustry   = errors.New("industry is not one of the accepted industries")
	errBadSize       = errors.New("companySize is not one of the accepted brackets")
)

// Create inserts a new company after checking for an existing active company
// with the same case-insensitive name. Derived rating fields start at zero.
func (s *Store) Create(ctx context.Context, co models.Company) (models.Company, error) {
	co.ID = primitive.NewObjectID()
	co.Name = normalize.Name(co.Name)
	co.NameCI = text.Fold(co.Name)
	co.Location = normalize.Name(co.Location)
	co.LocationCI = text.Fold(co.Location)

	if !models.ValidIndustry(co.Industry) {
		return models.Company{}, errBadIndustry
	}
	if co.CompanySize != "" && !models.ValidCompanySize(co.CompanySize) {
		return models.Company{}, errBadSize
	}

	// Existence check rather than a unique index: same-named companies in
	// different locations are created through the bootstrap path, which
	// matches on (name, location) instead.
	n, err := s.c.CountDocuments(ctx, bson.M{"name_ci": co.NameCI, "is_active": true})
	if err != nil {
		return models.Company{}, err
	}
	if n > 0 {
		return models.Company{}, ErrDuplicateName
	}

	co.AverageRating = 0
	co.TotalReviews = 0
	co.IsActive = true

	now := time.Now().UTC()
	co.CreatedAt = now
	co.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, co); err != nil {
		return models.Company{}, err
	}
	return co, nil
}

// FindOrCreate backs the initial-review bootstrap: it looks for an active
// company matching the case-insensitive (name, location) pair and creates
// one with the given defaults when none exists. The bool result reports
// whether the company was newly created.
func (s *Store) FindOrCreate(ctx context.Context, name, location, industry string) (models.Company, bool, error) {
	existing, err := s.FindByNameLocation(ctx, name, location)
	if err == nil {
		return *existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.Company{}, false, err
	}

	co, err := s.Create(ctx, models.Company{
		Name:     name,
		Location: location,
		Industry: industry,
	})
	if err == nil {
		return co, true, nil
	}
	if err != ErrDuplicateName {
		return models.Company{}, false, err
	}

	// Another active company holds this name without a location match.
	// Fall back to it by name alone so the bootstrap still succeeds.
	var byName models.Company
	if ferr := s.c.FindOne(ctx, bson.M{"name_ci": text.Fold(name), "is_active": true}).Decode(&byName); ferr != nil {
		return models.Company{}, false, ferr
	}
	return byName, false, nil
}

// FindByNameLocation matches an active company on the stored
// case-insensitive folds of name and location.
func (s *Store) FindByNameLocation(ctx context.Context, name, location string) (*models.Company, error) {
	var co models.Company
	err := s.c.FindOne(ctx, bson.M{
		"name_ci":     text.Fold(normalize.Name(name)),
		"location_ci": text.Fold(normalize.Name(location)),
		"is_active":   true,
	}).Decode(&co)
	if err != nil {
		return nil, err
	}
	return &co, nil
}

// GetByID loads an active company. Returns mongo.ErrNoDocuments for missing
// or soft-deleted companies.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var co models.Company
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&co); err != nil {
		return nil, err
	}
	return &co, nil
}

// Update applies the supplied document fields. Derived fields
// (average_rating, total_reviews) must never appear in set; callers strip
// them before reaching the store.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Company, error) {
	set["updated_at"] = time.Now().UTC()
	if name, ok := set["name"].(string); ok {
		set["name"] = normalize.Name(name)
		set["name_ci"] = text.Fold(name)
	}
	if loc, ok := set["location"].(string); ok {
		set["location"] = normalize.Name(loc)
		set["location_ci"] = text.Fold(loc)
	}

	after := options.After
	var co models.Company
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&co)
	if err != nil {
		return nil, err
	}
	return &co, nil
}

// UpdateStats writes the derived rating fields in a single $set. The stats
// recompute is the only production caller; updated_at is not touched, so it
// keeps tracking the last real edit to the document.
func (s *Store) UpdateStats(ctx context.Context, id primitive.ObjectID, averageRating float64, totalReviews int) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"average_rating": averageRating,
		"total_reviews":  totalReviews,
	}})
	return err
}

// SoftDelete deactivates a company. Its reviews are handled by the caller.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Find returns active companies matching the filter with the given options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Company, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["is_active"] = true

	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var companies []models.Company
	if err := cur.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Count returns the number of active companies matching the filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["is_active"] = true
	return s.c.CountDocuments(ctx, filter)
}

// TopRated returns the highest-rated active companies that have at least one
// review, ties broken by review volume.
func (s *Store) TopRated(ctx context.Context, limit int) ([]models.Company, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "average_rating", Value: -1}, {Key: "total_reviews", Value: -1}}).
		SetLimit(int64(limit))
	return s.Find(ctx, bson.M{"total_reviews": bson.M{"$gt": 0}}, opts)
}

// IndustryCount is one bucket of the per-industry aggregate.
type IndustryCount struct {
	Industry string `bson:"_id" json:"_id"`
	Count    int64  `bson:"count" json:"count"`
}

// IndustryCounts groups active companies by industry, largest first.
func (s *Store) IndustryCounts(ctx context.Context) ([]IndustryCount, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"is_active": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$industry", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []IndustryCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
