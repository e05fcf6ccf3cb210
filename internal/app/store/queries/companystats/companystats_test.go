package companystats

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		wantAvg float64
		wantTot int
	}{
		{"empty", nil, 0, 0},
		{"single", []int{4}, 4.0, 1},
		{"exact mean", []int{4, 2}, 3.0, 2},
		{"rounds down", []int{5, 4, 4}, 4.3, 3},
		{"rounds up", []int{5, 5, 4}, 4.7, 3},
		{"half rounds away from zero", []int{4, 3}, 3.5, 2},
		{"one third", []int{1, 1, 2}, 1.3, 3},
		{"all fives", []int{5, 5, 5, 5}, 5.0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.ratings)
			if got.AverageRating != tt.wantAvg {
				t.Errorf("AverageRating = %v, want %v", got.AverageRating, tt.wantAvg)
			}
			if got.TotalReviews != tt.wantTot {
				t.Errorf("TotalReviews = %d, want %d", got.TotalReviews, tt.wantTot)
			}
		})
	}
}
