package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler() *Handler {
	return &Handler{Log: zap.NewNop()}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asAlumni(r *http.Request) *http.Request {
	return auth.WithTestUser(r, &auth.Principal{
		ID:   primitive.NewObjectID().Hex(),
		Role: "alumni",
	})
}

func TestServeList_InvalidFilterIDs(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		url  string
	}{
		{"bad company", "/api/reviews?company=not-an-id"},
		{"bad author", "/api/reviews?author=zzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeList(rec, httptest.NewRequest("GET", tt.url, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestServeGet_MalformedID(t *testing.T) {
	h := newTestHandler()

	req := withURLParam(httptest.NewRequest("GET", "/api/reviews/nope", nil), "id", "nope")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeListByCompany_MalformedID(t *testing.T) {
	h := newTestHandler()

	req := withURLParam(httptest.NewRequest("GET", "/api/reviews/company/nope", nil), "companyId", "nope")
	rec := httptest.NewRecorder()
	h.ServeListByCompany(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	h := newTestHandler()

	longEnough := strings.Repeat("Plenty of interesting problems to work on here. ", 2)
	tests := []struct {
		name string
		body string
	}{
		{"empty", `{}`},
		{"short title", `{"company":"` + primitive.NewObjectID().Hex() + `","overallRating":4,"workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4,"title":"Hi","content":"` + longEnough + `","recommendations":"Yes"}`},
		{"short content", `{"company":"` + primitive.NewObjectID().Hex() + `","overallRating":4,"workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4,"title":"Good place","content":"nope","recommendations":"Yes"}`},
		{"bad recommendation", `{"company":"` + primitive.NewObjectID().Hex() + `","overallRating":4,"workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4,"title":"Good place","content":"` + longEnough + `","recommendations":"Absolutely"}`},
		{"rating out of range", `{"company":"` + primitive.NewObjectID().Hex() + `","overallRating":9,"workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4,"title":"Good place","content":"` + longEnough + `","recommendations":"Yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := asAlumni(httptest.NewRequest("POST", "/api/reviews", strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			h.HandleCreate(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleCreate_MalformedCompanyID(t *testing.T) {
	h := newTestHandler()

	longEnough := strings.Repeat("Plenty of interesting problems to work on here. ", 2)
	body := `{"company":"not-an-id","overallRating":4,"workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4,"title":"Good place","content":"` + longEnough + `","recommendations":"Yes"}`

	req := asAlumni(httptest.NewRequest("POST", "/api/reviews", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestBuildUpdateSet(t *testing.T) {
	title := "  <b>Bold</b> times  "
	rating := 3
	anon := true

	set := buildUpdateSet(updateInput{
		Title:         &title,
		OverallRating: &rating,
		IsAnonymous:   &anon,
	})

	if len(set) != 3 {
		t.Fatalf("len(set) = %d, want 3: %v", len(set), set)
	}
	if set["overall_rating"] != 3 {
		t.Errorf("overall_rating = %v", set["overall_rating"])
	}
	if got := set["title"].(string); strings.Contains(got, "<b>") {
		t.Errorf("title not sanitized: %q", got)
	}
	if set["is_anonymous"] != true {
		t.Errorf("is_anonymous = %v", set["is_anonymous"])
	}
	if _, ok := set["content"]; ok {
		t.Error("content should be absent when not supplied")
	}
}

func TestBuildUpdateSet_Empty(t *testing.T) {
	if set := buildUpdateSet(updateInput{}); len(set) != 0 {
		t.Errorf("empty input produced set %v", set)
	}
}
