package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badjuice/storefront/internal/review/domain"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.0, 4.0},
		{4.333333, 4.3},
		{1.75, 1.8}, // half rounds up
		{1.5, 1.5},
		{1.666666, 1.7},
		{2.25, 2.3},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.RoundRating(tt.in), "RoundRating(%v)", tt.in)
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, domain.ValidateRating(rating))
	}
	assert.False(t, domain.ValidateRating(0))
	assert.False(t, domain.ValidateRating(6))
	assert.False(t, domain.ValidateRating(-1))
}
