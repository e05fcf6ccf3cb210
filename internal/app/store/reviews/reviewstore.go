package reviewstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reviews")}
}

// ErrDuplicateReview is returned when the author already has an active
// review for the company.
var ErrDuplicateReview = errors.New("you have already reviewed this company")

// HasActiveReview reports whether the author has an active review for the
// company. This existence check, not a unique index, enforces the
// one-active-review-per-pair rule; a deleted review frees the pair for a
// new one.
func (s *Store) HasActiveReview(ctx context.Context, author, company primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"author":    author,
		"company":   company,
		"is_active": true,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create runs the duplicate check and inserts the review. The check and
// insert are not atomic; a race can slip a duplicate pair through, matching
// the behavior this service replaces.
func (s *Store) Create(ctx context.Context, rv models.Review) (models.Review, error) {
	dup, err := s.HasActiveReview(ctx, rv.AuthorID, rv.CompanyID)
	if err != nil {
		return models.Review{}, err
	}
	if dup {
		return models.Review{}, ErrDuplicateReview
	}

	rv.ID = primitive.NewObjectID()
	if rv.Pros == nil {
		rv.Pros = []string{}
	}
	if rv.Cons == nil {
		rv.Cons = []string{}
	}
	rv.HelpfulCount = 0
	rv.HelpfulUsers = []primitive.ObjectID{}
	rv.IsActive = true

	now := time.Now().UTC()
	rv.CreatedAt = now
	rv.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, rv); err != nil {
		return models.Review{}, err
	}
	return rv, nil
}

// GetByID loads an active review. Returns mongo.ErrNoDocuments for missing
// or soft-deleted reviews.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var rv models.Review
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// Update applies the supplied fields to an active review and returns the
// updated document. Callers build set from validated input only; author and
// company are immutable and never appear in it.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Review, error) {
	set["updated_at"] = time.Now().UTC()

	var rv models.Review
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rv)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// SoftDelete deactivates a review. The document stays in storage; listings
// and rating aggregation exclude it.
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

// ToggleHelpful adds or removes the voter from the review's helpful set and
// adjusts the count, flooring at zero. Returns the new count and whether the
// voter now has a vote recorded.
func (s *Store) ToggleHelpful(ctx context.Context, id, voter primitive.ObjectID) (count int, hasVoted bool, err error) {
	rv, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, false, err
	}

	voted := false
	for _, u := range rv.HelpfulUsers {
		if u == voter {
			voted = true
			break
		}
	}

	var update bson.M
	if voted {
		next := rv.HelpfulCount - 1
		if next < 0 {
			next = 0
		}
		update = bson.M{
			"$pull": bson.M{"helpful_users": voter},
			"$set":  bson.M{"helpful_count": next, "updated_at": time.Now().UTC()},
		}
		count, hasVoted = next, false
	} else {
		update = bson.M{
			"$addToSet": bson.M{"helpful_users": voter},
			"$set":      bson.M{"helpful_count": rv.HelpfulCount + 1, "updated_at": time.Now().UTC()},
		}
		count, hasVoted = rv.HelpfulCount+1, true
	}

	if _, err := s.c.UpdateByID(ctx, id, update); err != nil {
		return 0, false, err
	}
	return count, hasVoted, nil
}

// ListFilter narrows the public review listing.
type ListFilter struct {
	Company primitive.ObjectID
	Author  primitive.ObjectID
}

func (f ListFilter) query() bson.M {
	q := bson.M{"is_active": true}
	if !f.Company.IsZero() {
		q["company"] = f.Company
	}
	if !f.Author.IsZero() {
		q["author"] = f.Author
	}
	return q
}

// SortSpec returns the sort document for a listing sort key. Unknown keys
// fall back to newest-first.
func SortSpec(key string) bson.D {
	switch key {
	case "oldest":
		return bson.D{{Key: "created_at", Value: 1}}
	case "rating":
		return bson.D{{Key: "overall_rating", Value: -1}}
	case "helpful":
		return bson.D{{Key: "helpful_count", Value: -1}}
	default: // newest
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

// List returns one page of active reviews plus the total match count.
func (s *Store) List(ctx context.Context, f ListFilter, sort bson.D, skip, limit int64) ([]models.Review, int64, error) {
	q := f.query()

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListByCompany returns every active review for a company, newest first.
func (s *Store) ListByCompany(ctx context.Context, company primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"company": company, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Count returns the number of active reviews matching the filter.
func (s *Store) Count(ctx context.Context, f ListFilter) (int64, error) {
	return s.c.CountDocuments(ctx, f.query())
}
