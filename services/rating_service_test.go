package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRating(t *testing.T) {
	tests := []struct {
		name      string
		stars     []int
		wantAvg   float64
		wantCount int
	}{
		{"no reviews", nil, 0, 0},
		{"single review", []int{4}, 4.0, 1},
		{"whole average", []int{5, 4, 3}, 4.0, 3},
		{"rounds half up", []int{4, 5}, 4.5, 2},
		{"rounds to one decimal", []int{5, 4, 4}, 4.3, 3},
		{"rounds down", []int{1, 1, 2}, 1.3, 3},
		{"all fives", []int{5, 5, 5, 5}, 5.0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := ComputeRating(tt.stars)
			assert.Equal(t, tt.wantAvg, avg)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
