package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopscout-engine/internal/domain"
)

func TestRankTopKAndOrdering(t *testing.T) {
	s := NewScorer(DefaultWeights())

	listings := []domain.Listing{
		{Title: "Nike Waterproof Running Shoes UK 9", Price: fptr(2500), Rating: fptr(4.3), ReviewCount: iptr(800), Source: "A"},
		{Title: "Nike Waterproof Running Shoes UK 9", Price: fptr(2600), Rating: fptr(4.1), ReviewCount: iptr(50), Source: "B"},
		{Title: "Leather Formal Shoes", Price: fptr(1800), Rating: fptr(4.5), ReviewCount: iptr(200), Source: "A"},
	}
	budget := 3000
	c := domain.Constraints{
		Budget:   &budget,
		Keywords: []string{"waterproof"},
	}

	out := s.Rank(listings, c, "waterproof running shoes under 3000", 2)

	require.Len(t, out, 2)
	// the two Nike rows collapse; the survivor is source A (first seen)
	for _, r := range out {
		if r.Title == "Nike Waterproof Running Shoes UK 9" {
			assert.Equal(t, "A", r.Source)
		}
	}
	// non-increasing by score
	assert.GreaterOrEqual(t, out[0].Score, out[1].Score)
	// the waterproof Nike entry outranks the formal shoe
	assert.Equal(t, "Nike Waterproof Running Shoes UK 9", out[0].Title)
}

func TestRankReturnsFewerThanK(t *testing.T) {
	s := NewScorer(DefaultWeights())
	out := s.Rank([]domain.Listing{{Title: "only one"}}, domain.Constraints{}, "q", 5)
	assert.Len(t, out, 1)

	out = s.Rank(nil, domain.Constraints{}, "q", 5)
	assert.Empty(t, out)
}

func TestRankStableTieBreak(t *testing.T) {
	// zero weights: every listing scores identically, so input order holds
	s := NewScorer(Weights{})
	listings := []domain.Listing{
		{Title: "Prestige Cooker", URL: "u1"},
		{Title: "Hawkins Cooker Classic", URL: "u2"},
		{Title: "Pigeon Stovekraft", URL: "u3"},
	}

	out := s.Rank(listings, domain.Constraints{}, "cooker", 3)

	require.Len(t, out, 3)
	assert.Equal(t, "u1", out[0].URL)
	assert.Equal(t, "u2", out[1].URL)
	assert.Equal(t, "u3", out[2].URL)
}

func TestRankKFloor(t *testing.T) {
	s := NewScorer(DefaultWeights())
	out := s.Rank([]domain.Listing{
		{Title: "a b c"},
		{Title: "x y z"},
	}, domain.Constraints{}, "a b c", 0)
	// k below 1 is treated as 1
	assert.Len(t, out, 1)
}
