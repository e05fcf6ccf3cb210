// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureCompanies(ctx, db); err != nil {
		problems = append(problems, "companies: "+err.Error())
	}
	if err := ensureReviews(ctx, db); err != nil {
		problems = append(problems, "reviews: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("indexes ensured",
		zap.Strings("collections", []string{"users", "companies", "reviews"}))
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("role_active"),
		},
	})
	return ignoreConflict(err)
}

func ensureCompanies(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("companies").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Non-unique: duplicate names are prevented by the create
			// path's existence check, and the bootstrap distinguishes
			// same-named companies by location.
			Keys:    bson.D{{Key: "name_ci", Value: 1}, {Key: "location_ci", Value: 1}},
			Options: options.Index().SetName("name_location_ci"),
		},
		{
			Keys:    bson.D{{Key: "average_rating", Value: -1}, {Key: "total_reviews", Value: -1}},
			Options: options.Index().SetName("rating_reviews"),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "industry", Value: "text"},
			},
			Options: options.Index().SetName("company_text"),
		},
	})
	return ignoreConflict(err)
}

func ensureReviews(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("reviews").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "company", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("company_created"),
		},
		{
			Keys:    bson.D{{Key: "author", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("author_created"),
		},
		{
			// Backs the one-active-review-per-pair existence check. Not
			// unique: inactive duplicates are legal.
			Keys:    bson.D{{Key: "author", Value: 1}, {Key: "company", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("author_company_active"),
		},
	})
	return ignoreConflict(err)
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
// Treat that as "already there" so repeated startups stay clean.
func ignoreConflict(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "IndexKeySpecsConflict") {
		return nil
	}
	return err
}
