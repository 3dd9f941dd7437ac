package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopscout-engine/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, domain.Constraints{}, "anything")
	assert.Equal(t, Apology, got)
}

func TestSummarizeHeadlineAndCallouts(t *testing.T) {
	ranked := []domain.Listing{
		{Title: "Nike Waterproof Running Shoes UK 9", Price: fptr(2500), Rating: fptr(4.3), Source: "amazon"},
		{Title: "Leather Formal Shoes", Price: fptr(1800), Rating: fptr(4.5), Source: "flipkart"},
	}
	c := domain.Constraints{Budget: iptr(3000), Category: "fashion"}

	got := Summarize(ranked, c, "waterproof running shoes under 3000")
	lines := strings.Split(got, " \n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Top 2 picks in fashion for: “waterproof running shoes under 3000” (near budget ₹3,000).", lines[0])
	assert.Equal(t, "Lowest price: Leather Formal Shoes — ₹1,800 [flipkart].", lines[1])
	assert.Equal(t, "Highest rated: Leather Formal Shoes — 4.5/5, ₹1,800 [flipkart].", lines[2])
}

func TestSummarizeDeterministic(t *testing.T) {
	ranked := []domain.Listing{{Title: "Thing", Price: fptr(100), Rating: fptr(4), Source: "a"}}
	c := domain.Constraints{}
	assert.Equal(t,
		Summarize(ranked, c, "thing"),
		Summarize(ranked, c, "thing"))
}

func TestSummarizeSkipsCalloutsWithoutData(t *testing.T) {
	ranked := []domain.Listing{
		{Title: "No price no rating", Source: "a"},
	}
	got := Summarize(ranked, domain.Constraints{}, "q")

	assert.NotContains(t, got, "Lowest price")
	assert.NotContains(t, got, "Highest rated")
	assert.Contains(t, got, "Top 1 picks")
}

func TestSummarizeClipsLongTitles(t *testing.T) {
	long := strings.Repeat("x", 100)
	ranked := []domain.Listing{{Title: long, Price: fptr(10), Source: "a"}}

	got := Summarize(ranked, domain.Constraints{}, "q")
	assert.Contains(t, got, strings.Repeat("x", 72)+" —")
	assert.NotContains(t, got, strings.Repeat("x", 73))
}
