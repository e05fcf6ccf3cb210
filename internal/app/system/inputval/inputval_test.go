package inputval

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Title   string `validate:"required,min=5,max=100" label:"Title"`
	Content string `validate:"required,min=50,max=2000" label:"Content"`
	Rating  int    `validate:"required,min=1,max=5" label:"Overall rating"`
	Verdict string `validate:"required,oneof=Yes No Maybe" label:"Recommendation"`
	Website string `validate:"omitempty,url" label:"Website"`
}

func validSample() sampleInput {
	return sampleInput{
		Title:   "Great place to work",
		Content: strings.Repeat("Solid engineering culture and honest management. ", 3),
		Rating:  4,
		Verdict: "Yes",
	}
}

func TestValidate_Passes(t *testing.T) {
	res := Validate(validSample())
	if res.HasErrors() {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First() on clean result = %q, want empty", res.First())
	}
}

func TestValidate_FieldFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*sampleInput)
		wantField string
		wantIn    string
	}{
		{
			name:      "short title",
			mutate:    func(s *sampleInput) { s.Title = "Hey" },
			wantField: "Title",
			wantIn:    "at least 5 characters",
		},
		{
			name:      "missing content",
			mutate:    func(s *sampleInput) { s.Content = "" },
			wantField: "Content",
			wantIn:    "required",
		},
		{
			name:      "rating out of range",
			mutate:    func(s *sampleInput) { s.Rating = 6 },
			wantField: "Overall rating",
			wantIn:    "at most 5",
		},
		{
			name:      "bad verdict",
			mutate:    func(s *sampleInput) { s.Verdict = "Absolutely" },
			wantField: "Recommendation",
			wantIn:    "one of",
		},
		{
			name:      "bad url",
			mutate:    func(s *sampleInput) { s.Website = "not a url" },
			wantField: "Website",
			wantIn:    "valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSample()
			tt.mutate(&in)
			res := Validate(in)
			if !res.HasErrors() {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, e := range res.Errors {
				if e.Field == tt.wantField {
					found = true
					if !strings.Contains(e.Message, tt.wantIn) {
						t.Errorf("message for %s = %q, want substring %q", e.Field, e.Message, tt.wantIn)
					}
				}
			}
			if !found {
				t.Errorf("no error reported for field %q (got %v)", tt.wantField, res.Fields())
			}
		})
	}
}

func TestValidate_MultipleErrorsKeepOrder(t *testing.T) {
	in := sampleInput{} // everything required missing
	res := Validate(in)
	if len(res.Errors) < 4 {
		t.Fatalf("expected at least 4 errors, got %d", len(res.Errors))
	}
	if res.First() == "" {
		t.Error("First() should return the first failure message")
	}
}
