package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/alumnivoice/internal/app/store/users"
	"github.com/dalemusser/alumnivoice/internal/app/system/indexes"
	"github.com/dalemusser/alumnivoice/internal/domain/models"
	"github.com/dalemusser/alumnivoice/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*userstore.Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return userstore.New(db), db
}

func TestCreate_Defaults(t *testing.T) {
	s, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := s.Create(ctx, models.User{
		Name:           "  Priya Shah ",
		Email:          " Priya@A.com ",
		PasswordHash:   "x",
		GraduationYear: 2021,
		Branch:         "Computer Science",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "priya@a.com" {
		t.Errorf("email = %q, want lowercased and trimmed", u.Email)
	}
	if u.Name != "Priya Shah" {
		t.Errorf("name = %q", u.Name)
	}
	if u.Role != models.RoleStudent || u.UserType != models.UserTypeReader {
		t.Errorf("defaults = (%s, %s), want (student, reader)", u.Role, u.UserType)
	}
	if !u.IsActive {
		t.Error("new users must start active")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s, _ := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mk := func() (models.User, error) {
		return s.Create(ctx, models.User{
			Name: "Dev", Email: "dev@a.com", PasswordHash: "x",
			GraduationYear: 2020, Branch: "Other",
		})
	}
	if _, err := mk(); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := mk(); !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("second create err = %v, want ErrDuplicateEmail", err)
	}
}

func TestGetByEmail_IncludesDeactivated(t *testing.T) {
	s, db := setup(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser("gone@a.com", testutil.Inactive())

	got, err := s.GetByEmail(ctx, "GONE@a.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("got %s, want %s", got.ID.Hex(), u.ID.Hex())
	}
	if got.IsActive {
		t.Error("fixture should be inactive")
	}

	// But the active-only read hides it.
	if _, err := s.GetActiveByID(ctx, u.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetActiveByID err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestSetActive_RoundTrip(t *testing.T) {
	s, db := setup(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser("mod@a.com")

	if err := s.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := s.GetActiveByID(ctx, u.ID); err != mongo.ErrNoDocuments {
		t.Fatalf("expected hidden after deactivate, got err = %v", err)
	}
	if err := s.SetActive(ctx, u.ID, true); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := s.GetActiveByID(ctx, u.ID); err != nil {
		t.Fatalf("expected visible after activate: %v", err)
	}
}

func TestCountsBy_Role(t *testing.T) {
	s, db := setup(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser("a@a.com", testutil.WithRole(models.RoleAlumni))
	fixtures.CreateUser("b@a.com", testutil.WithRole(models.RoleAlumni))
	fixtures.CreateUser("c@a.com")
	fixtures.CreateUser("d@a.com", testutil.Inactive())

	counts, err := s.CountsBy(ctx, "role")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	got := map[string]int64{}
	for _, c := range counts {
		got[c.Key] = c.Count
	}
	if got[models.RoleAlumni] != 2 || got[models.RoleStudent] != 1 {
		t.Errorf("counts = %v, want alumni:2 student:1 (inactive excluded)", got)
	}
}
