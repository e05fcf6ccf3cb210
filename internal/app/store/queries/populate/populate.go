// Package populate joins review documents with their author and company
// summaries for API payloads. Authors of anonymous reviews are masked.
package populate

import (
	"context"

	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthorView is the public slice of a review author.
type AuthorView struct {
	ID             string `bson:"-" json:"id,omitempty"`
	Name           string `bson:"name" json:"name"`
	GraduationYear int    `bson:"graduation_year" json:"graduationYear,omitempty"`
	Branch         string `bson:"branch" json:"branch,omitempty"`
}

// CompanyView is the company summary embedded in review payloads.
type CompanyView struct {
	ID       string `bson:"-" json:"id"`
	Name     string `bson:"name" json:"name"`
	Industry string `bson:"industry" json:"industry"`
	Location string `bson:"location" json:"location,omitempty"`
	Logo     string `bson:"logo" json:"logo,omitempty"`
}

// ReviewView is a review with its references resolved. The embedded
// Review's raw author/company ids are shadowed by the resolved views.
type ReviewView struct {
	models.Review
	Author  *AuthorView  `json:"author"`
	Company *CompanyView `json:"company"`
}

// anonymousAuthor is what readers see in place of a masked author.
func anonymousAuthor() *AuthorView {
	return &AuthorView{Name: "Anonymous"}
}

// Reviews resolves authors and companies for a batch of reviews with one
// $in query per collection. Reviews marked anonymous get a masked author;
// a dangling reference resolves to nil (author) and the masked form is not
// applied to companies, which stay nil.
func Reviews(ctx context.Context, db *mongo.Database, reviews []models.Review) ([]ReviewView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(reviews))
	companyIDs := make([]primitive.ObjectID, 0, len(reviews))
	seenAuthor := map[primitive.ObjectID]bool{}
	seenCompany := map[primitive.ObjectID]bool{}

	for _, rv := range reviews {
		if !rv.IsAnonymous && !seenAuthor[rv.AuthorID] {
			seenAuthor[rv.AuthorID] = true
			authorIDs = append(authorIDs, rv.AuthorID)
		}
		if !seenCompany[rv.CompanyID] {
			seenCompany[rv.CompanyID] = true
			companyIDs = append(companyIDs, rv.CompanyID)
		}
	}

	authors, err := loadAuthors(ctx, db, authorIDs)
	if err != nil {
		return nil, err
	}
	companies, err := loadCompanies(ctx, db, companyIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewView, len(reviews))
	for i, rv := range reviews {
		out[i] = Assemble(rv, authors[rv.AuthorID], companies[rv.CompanyID])
	}
	return out, nil
}

// One resolves a single review's references.
func One(ctx context.Context, db *mongo.Database, rv models.Review) (ReviewView, error) {
	views, err := Reviews(ctx, db, []models.Review{rv})
	if err != nil {
		return ReviewView{}, err
	}
	return views[0], nil
}

// Assemble builds the view from already-loaded references. Masking happens
// here so the logic is testable without a database.
func Assemble(rv models.Review, author *AuthorView, company *CompanyView) ReviewView {
	v := ReviewView{Review: rv, Company: company}
	if rv.IsAnonymous {
		v.Author = anonymousAuthor()
	} else {
		v.Author = author
	}
	return v
}

func loadAuthors(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]*AuthorView, error) {
	out := make(map[primitive.ObjectID]*AuthorView, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := db.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = &AuthorView{
			ID:             u.ID.Hex(),
			Name:           u.Name,
			GraduationYear: u.GraduationYear,
			Branch:         u.Branch,
		}
	}
	return out, nil
}

func loadCompanies(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]*CompanyView, error) {
	out := make(map[primitive.ObjectID]*CompanyView, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := db.Collection("companies").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var companies []models.Company
	if err := cur.All(ctx, &companies); err != nil {
		return nil, err
	}
	for _, co := range companies {
		out[co.ID] = &CompanyView{
			ID:       co.ID.Hex(),
			Name:     co.Name,
			Industry: co.Industry,
			Location: co.Location,
			Logo:     co.Logo,
		}
	}
	return out, nil
}
