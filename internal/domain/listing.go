package domain

// Listing is a normalized marketplace row handed to the engine by a
// per-source normalizer. The engine never mutates one; ranking produces
// ScoredListing wrappers instead.
type Listing struct {
	Title       string            `json:"title"`
	Price       *float64          `json:"price,omitempty"`
	Currency    string            `json:"currency"`
	Rating      *float64          `json:"rating,omitempty"`
	ReviewCount *int              `json:"review_count,omitempty"`
	URL         string            `json:"url"`
	Image       string            `json:"image,omitempty"`
	Source      string            `json:"source"`
	Category    string            `json:"category,omitempty"`
	Attrs       AttributeMap      `json:"attrs,omitempty"`
	Raw         map[string]string `json:"raw,omitempty"`
}

// ScoredListing attaches a relevance score during ranking only.
type ScoredListing struct {
	Listing
	Score float64 `json:"score"`
}

func (l Listing) PriceValue() (float64, bool) {
	if l.Price == nil {
		return 0, false
	}
	return *l.Price, true
}
