package populate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssemble_MasksAnonymousAuthor(t *testing.T) {
	author := &AuthorView{ID: primitive.NewObjectID().Hex(), Name: "Priya Shah", GraduationYear: 2019, Branch: "Computer Science"}
	company := &CompanyView{ID: primitive.NewObjectID().Hex(), Name: "Initech"}

	rv := models.Review{IsAnonymous: true, Title: "Solid place"}
	v := Assemble(rv, author, company)

	if v.Author == nil || v.Author.Name != "Anonymous" {
		t.Fatalf("anonymous author = %+v, want masked", v.Author)
	}
	if v.Author.ID != "" || v.Author.GraduationYear != 0 || v.Author.Branch != "" {
		t.Errorf("masked author leaks identifying fields: %+v", v.Author)
	}
	if v.Company != company {
		t.Error("company should pass through unchanged")
	}
}

func TestAssemble_NamedAuthorPassesThrough(t *testing.T) {
	author := &AuthorView{Name: "Priya Shah"}
	v := Assemble(models.Review{IsAnonymous: false}, author, nil)
	if v.Author != author {
		t.Errorf("author = %+v, want passthrough", v.Author)
	}
}

func TestReviewView_JSONShadowsRawRefs(t *testing.T) {
	rv := models.Review{
		ID:        primitive.NewObjectID(),
		AuthorID:  primitive.NewObjectID(),
		CompanyID: primitive.NewObjectID(),
		Title:     "Good growth",
	}
	v := Assemble(rv, &AuthorView{Name: "Dev Patel"}, &CompanyView{Name: "Initech"})

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"author":{"name":"Dev Patel"`) {
		t.Errorf("author not resolved in payload: %s", s)
	}
	if strings.Contains(s, rv.AuthorID.Hex()) {
		t.Errorf("raw author id leaked into payload: %s", s)
	}
}
