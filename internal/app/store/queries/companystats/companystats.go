// Package companystats recomputes a company's derived rating fields from
// its active reviews.
package companystats

import (
	"context"
	"math"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Summary is what Recompute writes onto the company document.
type Summary struct {
	AverageRating float64
	TotalReviews  int
}

// Summarize computes the derived fields from a set of overall ratings.
// The average is rounded to one decimal, half away from zero.
func Summarize(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return Summary{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  len(ratings),
	}
}

// Recompute reads the company's active reviews and writes average_rating and
// total_reviews in a single $set. When the company has no active reviews the
// update is skipped and the stored values stay as they were; a company whose
// last review is deleted keeps its final rating. Concurrent recomputes are
// last-write-wins.
func Recompute(ctx context.Context, db *mongo.Database, companyID primitive.ObjectID) error {
	opts := options.Find().SetProjection(bson.M{"overall_rating": 1})
	cur, err := db.Collection("reviews").Find(ctx,
		bson.M{"company": companyID, "is_active": true}, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var docs []struct {
		OverallRating int `bson:"overall_rating"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	ratings := make([]int, len(docs))
	for i, d := range docs {
		ratings[i] = d.OverallRating
	}
	sum := Summarize(ratings)
	return companystore.New(db).UpdateStats(ctx, companyID, sum.AverageRating, sum.TotalReviews)
}

// RecomputeLogged runs Recompute and logs any failure. Review mutations call
// this after a successful write: the review outcome stands even when the
// aggregation fails, so the error is recorded, never returned.
func RecomputeLogged(ctx context.Context, db *mongo.Database, companyID primitive.ObjectID, logger *zap.Logger) {
	if err := Recompute(ctx, db, companyID); err != nil {
		logger.Error("company stats recompute failed",
			zap.String("company_id", companyID.Hex()),
			zap.Error(err))
	}
}
