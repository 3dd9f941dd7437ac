package amazon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/lexicon"
)

const fixture = `<html><body><div class="s-main-slot">
<div data-component-type="s-search-result">
  <h2><a href="/hp-victus-dp0xxx"><span>HP Victus 16GB RAM 512GB SSD RTX 4050 Gaming Laptop</span></a></h2>
  <span class="a-price"><span class="a-offscreen">₹82,990</span></span>
  <span class="a-icon-alt">4.3 out of 5 stars</span>
  <span aria-label="2,114 ratings">2,114</span>
  <img class="s-image" src="https://img.example/victus.jpg"/>
</div>
<div data-component-type="s-search-result">
  <h2><a href="https://www.amazon.in/rog-strix"><span>ASUS ROG Strix SCAR 18 i9 RTX 4090</span></a></h2>
  <span class="a-price"><span class="a-offscreen">₹3,49,990</span></span>
</div>
<div data-component-type="s-search-result">
  <h2><a href="/no-title"><span></span></a></h2>
  <span class="a-price"><span class="a-offscreen">₹1,000</span></span>
</div>
</div></body></html>`

func testExtractor() *attr.Extractor { return attr.New(lexicon.Default()) }

func TestParseFixture(t *testing.T) {
	budget := 90000
	c := domain.Constraints{Budget: &budget, Category: "electronics"}

	got, err := Parse(strings.NewReader(fixture), c, testExtractor())
	require.NoError(t, err)
	// the ROG card is beyond budget headroom, the third has no title
	require.Len(t, got, 1)

	l := got[0]
	assert.Equal(t, "HP Victus 16GB RAM 512GB SSD RTX 4050 Gaming Laptop", l.Title)
	assert.Equal(t, "https://www.amazon.in/hp-victus-dp0xxx", l.URL)
	require.NotNil(t, l.Price)
	assert.Equal(t, 82990.0, *l.Price)
	require.NotNil(t, l.Rating)
	assert.Equal(t, 4.3, *l.Rating)
	require.NotNil(t, l.ReviewCount)
	assert.Equal(t, 2114, *l.ReviewCount)
	assert.Equal(t, "https://img.example/victus.jpg", l.Image)
	assert.Equal(t, Name, l.Source)
	assert.Equal(t, "electronics", l.Category)
	assert.Equal(t, "₹82,990", l.Raw["price_text"])

	// title-derived attributes ride along
	assert.Equal(t, "16", l.Attrs.Scalar("ram_gb"))
	assert.Equal(t, "512", l.Attrs.Scalar("storage_gb"))
}

func TestParseNoBudgetKeepsEverything(t *testing.T) {
	got, err := Parse(strings.NewReader(fixture), domain.Constraints{}, testExtractor())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://www.amazon.in/rog-strix", got[1].URL)
}

func TestParseEmptyDocument(t *testing.T) {
	got, err := Parse(strings.NewReader("<html><body></body></html>"), domain.Constraints{}, testExtractor())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchURL(t *testing.T) {
	f := &Fetcher{Query: "gaming laptop under 90k"}
	assert.Equal(t, "https://www.amazon.in/s?k=gaming+laptop+under+90k", f.SearchURL())
}
