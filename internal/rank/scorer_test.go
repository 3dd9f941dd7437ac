package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopscout-engine/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// priceOnly isolates the price signal by zeroing every other weight.
func priceOnly() Scorer {
	return NewScorer(Weights{Price: 1.0})
}

func priceScore(t *testing.T, price float64, budget int) float64 {
	t.Helper()
	l := domain.Listing{Title: "x", Price: fptr(price)}
	c := domain.Constraints{Budget: iptr(budget)}
	return priceOnly().Score(l, c, "y")
}

func TestPriceFitnessUnderBudget(t *testing.T) {
	// cheaper under budget scores higher
	assert.InDelta(t, 0.7, priceScore(t, 2500, 5000), 1e-9)
	assert.InDelta(t, 0.4, priceScore(t, 5000, 5000), 1e-9)
	assert.InDelta(t, 0.988, priceScore(t, 100, 5000), 1e-9)
}

func TestPriceFitnessOverBudget(t *testing.T) {
	assert.InDelta(t, 0.76, priceScore(t, 6000, 5000), 1e-9)
	// far over budget floors at 0.05, never zero
	assert.InDelta(t, 0.05, priceScore(t, 10000, 5000), 1e-9)
	assert.InDelta(t, 0.05, priceScore(t, 100000, 5000), 1e-9)
}

func TestPriceFitnessNeutralWhenUnknown(t *testing.T) {
	noPrice := domain.Listing{Title: "x"}
	withBudget := domain.Constraints{Budget: iptr(5000)}
	assert.InDelta(t, 0.45, priceOnly().Score(noPrice, withBudget, "y"), 1e-9)

	withPrice := domain.Listing{Title: "x", Price: fptr(999)}
	noBudget := domain.Constraints{}
	assert.InDelta(t, 0.45, priceOnly().Score(withPrice, noBudget, "y"), 1e-9)
}

func TestKeywordBonusCapped(t *testing.T) {
	s := NewScorer(Weights{KeywordHit: 0.03, KeywordCap: 0.15})
	l := domain.Listing{Title: "alpha beta gamma delta epsilon zeta eta theta"}
	c := domain.Constraints{Keywords: []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	}}
	// 8 hits at 0.03 would be 0.24; the additive bonus caps at 0.15
	assert.InDelta(t, 0.15, s.Score(l, c, ""), 1e-9)
}

func TestScoreBounded(t *testing.T) {
	s := NewScorer(DefaultWeights())
	listings := []domain.Listing{
		{},
		{Title: "Nike Waterproof Running Shoes UK 9", Price: fptr(2500), Rating: fptr(4.3), ReviewCount: iptr(800)},
		{Title: "zzz", Price: fptr(1e12), Rating: fptr(5), ReviewCount: iptr(1 << 30)},
		{Title: "exact query text", Rating: fptr(0)},
	}
	constraints := []domain.Constraints{
		{},
		{Budget: iptr(3000), Keywords: []string{"waterproof", "nike", "shoes"}},
		{Budget: iptr(1), Filters: domain.AttributeMap{"brand": []string{"nike"}}},
	}
	for _, l := range listings {
		for _, c := range constraints {
			got := s.Score(l, c, "exact query text")
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.6)
		}
	}
}

func TestScoreSocialProof(t *testing.T) {
	s := NewScorer(Weights{Rating: 1.0})
	l := domain.Listing{Title: "x", Rating: fptr(4.0)}
	assert.InDelta(t, 0.8, s.Score(l, domain.Constraints{}, "y"), 1e-9)

	// absent rating and reviews contribute zero, not an error
	s = NewScorer(Weights{Rating: 1.0, Reviews: 1.0})
	assert.InDelta(t, 0.0, s.Score(domain.Listing{Title: "x"}, domain.Constraints{}, "y"), 1e-9)
}

func TestScoreSimilarityOrderInsensitive(t *testing.T) {
	s := NewScorer(Weights{Similarity: 1.0})
	l := domain.Listing{Title: "Shoes Running Waterproof Nike"}
	got := s.Score(l, domain.Constraints{}, "nike waterproof running shoes")
	// token-set ratio ignores token order entirely
	assert.InDelta(t, 1.0, got, 1e-9)
}
