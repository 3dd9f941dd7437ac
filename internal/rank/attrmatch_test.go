package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopscout-engine/internal/domain"
)

func TestAttributeMatchEmptyFilters(t *testing.T) {
	l := domain.Listing{
		Title: "Anything",
		Attrs: domain.AttributeMap{"color": []string{"red"}, "ram_gb": "16"},
	}
	assert.Equal(t, 0.0, AttributeMatch(l, domain.Constraints{}))
	assert.Equal(t, 0.0, AttributeMatch(l, domain.Constraints{Filters: domain.AttributeMap{}}))
	assert.Equal(t, 0.0, AttributeMatch(domain.Listing{}, domain.Constraints{}))
}

func TestAttributeMatchBrand(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{"brand": []string{"nike"}}}

	// structured overlap: full credit
	l := domain.Listing{Title: "Runner", Attrs: domain.AttributeMap{"brand": []string{"Nike"}}}
	assert.InDelta(t, 1.0, AttributeMatch(l, c), 1e-9)

	// no structured brand, but the title names it: partial credit 0.8
	l = domain.Listing{Title: "Nike Pegasus 40"}
	assert.InDelta(t, 0.8, AttributeMatch(l, c), 1e-9)

	// neither
	l = domain.Listing{Title: "Adidas Ultraboost"}
	assert.InDelta(t, 0.0, AttributeMatch(l, c), 1e-9)
}

func TestAttributeMatchColorMaterialNoFallback(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{
		"color":    []string{"red"},
		"material": []string{"leather"},
	}}

	// title mentions both but nothing structured matched: zero credit
	l := domain.Listing{Title: "Red Leather Handbag"}
	assert.InDelta(t, 0.0, AttributeMatch(l, c), 1e-9)

	l.Attrs = domain.AttributeMap{"color": []string{"red"}, "material": []string{"leather"}}
	assert.InDelta(t, 1.0, AttributeMatch(l, c), 1e-9)
}

func TestAttributeMatchPartialRatio(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{
		"brand": []string{"nike"}, // 1.0 possible
		"color": []string{"red"}, // 0.5 possible
	}}
	l := domain.Listing{
		Title: "Sneaker",
		Attrs: domain.AttributeMap{"color": []string{"red"}},
	}
	// earned 0.5 of possible 1.5
	assert.InDelta(t, 0.5/1.5, AttributeMatch(l, c), 1e-9)
}

func TestAttributeMatchSizesExact(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{"size_uk": "9"}}

	l := domain.Listing{Attrs: domain.AttributeMap{"size_uk": "9"}}
	assert.InDelta(t, 1.0, AttributeMatch(l, c), 1e-9)

	l = domain.Listing{Attrs: domain.AttributeMap{"size_uk": "10"}}
	assert.InDelta(t, 0.0, AttributeMatch(l, c), 1e-9)
}

func TestAttributeMatchCapacityTolerance(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{"capacity_l": "5"}}

	within := domain.Listing{Attrs: domain.AttributeMap{"capacity_l": "5.5"}}
	assert.InDelta(t, 1.0, AttributeMatch(within, c), 1e-9)

	outside := domain.Listing{Attrs: domain.AttributeMap{"capacity_l": "6"}}
	assert.InDelta(t, 0.0, AttributeMatch(outside, c), 1e-9)

	// malformed numeric is a no-match, not a crash
	junk := domain.Listing{Attrs: domain.AttributeMap{"capacity_l": "five"}}
	assert.InDelta(t, 0.0, AttributeMatch(junk, c), 1e-9)
}

func TestAttributeMatchExactUnitStrings(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{
		"ram_gb":     "16",
		"storage_gb": "512",
	}}
	l := domain.Listing{Attrs: domain.AttributeMap{
		"ram_gb":     "16",
		"storage_gb": "256",
	}}
	// 0.6 earned of 1.2 possible
	assert.InDelta(t, 0.5, AttributeMatch(l, c), 1e-9)
}

func TestAttributeMatchMakerFallbackKey(t *testing.T) {
	c := domain.Constraints{Filters: domain.AttributeMap{"brand": []string{"bosch"}}}
	l := domain.Listing{Title: "Dishwasher", Attrs: domain.AttributeMap{"maker": []string{"Bosch"}}}
	assert.InDelta(t, 1.0, AttributeMatch(l, c), 1e-9)
}
