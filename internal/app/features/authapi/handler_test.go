package authapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	companystore "github.com/dalemusser/alumnivoice/internal/app/store/companies"
	reviewstore "github.com/dalemusser/alumnivoice/internal/app/store/reviews"
	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/auth"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/dalemusser/alumnivoice/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// validation-only tests run against a handler with no DB; they must be
// rejected before any store call.
func newTestHandler() *Handler {
	return &Handler{Log: zap.NewNop(), EmailDomain: "a.com", DefaultIndustry: "Technology"}
}

// newDBHandler backs the handler with a real test database. Tests using it
// skip when no Mongo is reachable.
func newDBHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return &Handler{
		DB:              db,
		Log:             zap.NewNop(),
		Users:           userstore.New(db),
		Companies:       companystore.New(db),
		Reviews:         reviewstore.New(db),
		EmailDomain:     "a.com",
		DefaultIndustry: "Technology",
	}, db
}

func signedIn(r *http.Request) *http.Request {
	return auth.WithTestUser(r, &auth.Principal{
		ID:   primitive.NewObjectID().Hex(),
		Role: "alumni",
	})
}

func TestHandleRegister_ValidationErrors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"short password", `{"name":"A Student","email":"s@a.com","password":"abc","graduationYear":2024,"branch":"Other"}`},
		{"bad email", `{"name":"A Student","email":"nope","password":"secret1","graduationYear":2024,"branch":"Other"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleRegister(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body struct {
				Success bool `json:"success"`
				Errors  []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"errors"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || len(body.Errors) == 0 {
				t.Errorf("body = %s, want success=false with errors", rec.Body.String())
			}
		})
	}
}

func TestHandleRegister_RestrictedDomain(t *testing.T) {
	h := newTestHandler()

	body := `{"name":"A Student","email":"someone@gmail.com","password":"secret1","graduationYear":2024,"branch":"Other"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "@a.com") {
		t.Errorf("body = %s, want domain-restriction message", rec.Body.String())
	}
}

func TestHandleRegister_UnknownBranch(t *testing.T) {
	h := newTestHandler()

	body := `{"name":"A Student","email":"s@a.com","password":"secret1","graduationYear":2024,"branch":"Astrology"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLogin_ValidationErrors(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"x"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleOnboarding_RejectsAdminRole(t *testing.T) {
	h := newTestHandler()

	// Onboarding may only pick student or alumni; admin is never
	// self-assignable.
	req := signedIn(httptest.NewRequest("PUT", "/api/auth/update-profile",
		strings.NewReader(`{"role":"admin"}`)))
	rec := httptest.NewRecorder()
	h.HandleOnboarding(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCreateInitialReview_OverallIsRoundedMean(t *testing.T) {
	h, db := newDBHandler(t)
	fixtures := testutil.NewFixtures(t, db)

	longEnough := strings.Repeat("Great teamwork and mentoring. ", 3)

	tests := []struct {
		name        string
		ratings     [5]int // workCulture, workLifeBalance, careerGrowth, compensation, management
		wantOverall int
	}{
		{"exact mean", [5]int{4, 3, 5, 4, 4}, 4},
		{"rounds down", [5]int{4, 3, 4, 3, 3}, 3},
		{"rounds up", [5]int{5, 5, 5, 5, 4}, 5},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := fixtures.CreateUser(fmt.Sprintf("alum%d@a.com", i), testutil.WithRole(models.RoleAlumni))
			companyName := fmt.Sprintf("Initech %d", i)

			body := fmt.Sprintf(`{"companyName":%q,"location":"Pune","joinYear":2020,"review":%q,`+
				`"workCulture":%d,"workLifeBalance":%d,"careerGrowth":%d,"compensation":%d,"management":%d}`,
				companyName, longEnough,
				tt.ratings[0], tt.ratings[1], tt.ratings[2], tt.ratings[3], tt.ratings[4])

			req := auth.WithTestUser(httptest.NewRequest("POST", "/api/auth/create-initial-review",
				strings.NewReader(body)),
				&auth.Principal{ID: u.ID.Hex(), Role: models.RoleAlumni})
			rec := httptest.NewRecorder()
			h.HandleCreateInitialReview(rec, req)

			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
			}

			var resp struct {
				Review struct {
					OverallRating int    `json:"overallRating"`
					Title         string `json:"title"`
				} `json:"review"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Review.OverallRating != tt.wantOverall {
				t.Errorf("overallRating = %d, want %d", resp.Review.OverallRating, tt.wantOverall)
			}
			if want := "Review of " + companyName; resp.Review.Title != want {
				t.Errorf("title = %q, want %q", resp.Review.Title, want)
			}

			ctx, cancel := testutil.TestContext()
			defer cancel()
			co, err := h.Companies.FindByNameLocation(ctx, companyName, "Pune")
			if err != nil {
				t.Fatalf("company lookup: %v", err)
			}
			if co.AverageRating != float64(tt.wantOverall) || co.TotalReviews != 1 {
				t.Errorf("company stats = (%.1f, %d), want (%.1f, 1)",
					co.AverageRating, co.TotalReviews, float64(tt.wantOverall))
			}
		})
	}
}

func TestHandleCreateInitialReview_FuzzyMatchKeepsSubmittedName(t *testing.T) {
	h, db := newDBHandler(t)
	fixtures := testutil.NewFixtures(t, db)

	existing := fixtures.CreateCompany("Initech", "Pune")
	u := fixtures.CreateUser("alum@a.com", testutil.WithRole(models.RoleAlumni))

	longEnough := strings.Repeat("Great teamwork and mentoring. ", 3)
	body := `{"companyName":"INITECH","location":"PUNE","joinYear":2021,"review":"` + longEnough +
		`","workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`

	req := auth.WithTestUser(httptest.NewRequest("POST", "/api/auth/create-initial-review",
		strings.NewReader(body)),
		&auth.Principal{ID: u.ID.Hex(), Role: models.RoleAlumni})
	rec := httptest.NewRecorder()
	h.HandleCreateInitialReview(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Review struct {
			Title   string `json:"title"`
			Company struct {
				ID string `json:"id"`
			} `json:"company"`
		} `json:"review"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Review.Company.ID != existing.ID.Hex() {
		t.Errorf("company = %s, want existing %s", resp.Review.Company.ID, existing.ID.Hex())
	}
	// The title keeps the spelling the caller submitted, not the stored name.
	if resp.Review.Title != "Review of INITECH" {
		t.Errorf("title = %q, want %q", resp.Review.Title, "Review of INITECH")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	co, err := h.Companies.GetByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("company reload: %v", err)
	}
	if co.AverageRating != 4.0 || co.TotalReviews != 1 {
		t.Errorf("company stats = (%.1f, %d), want (4.0, 1)", co.AverageRating, co.TotalReviews)
	}
}

func TestHandleCreateInitialReview_Validation(t *testing.T) {
	h := newTestHandler()

	longEnough := strings.Repeat("Great teamwork and mentoring. ", 3)

	tests := []struct {
		name string
		body string
	}{
		{"missing company", `{"location":"Pune","joinYear":2020,"review":"` + longEnough + `","workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`},
		{"short review", `{"companyName":"Initech","location":"Pune","joinYear":2020,"review":"too short","workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`},
		{"rating out of range", `{"companyName":"Initech","location":"Pune","joinYear":2020,"review":"` + longEnough + `","workCulture":6,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`},
		{"join year too early", `{"companyName":"Initech","location":"Pune","joinYear":1999,"review":"` + longEnough + `","workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`},
		{"join year in future", `{"companyName":"Initech","location":"Pune","joinYear":3000,"review":"` + longEnough + `","workCulture":4,"workLifeBalance":4,"careerGrowth":4,"compensation":4,"management":4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signedIn(httptest.NewRequest("POST", "/api/auth/create-initial-review",
				strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			h.HandleCreateInitialReview(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}
