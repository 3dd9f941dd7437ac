package render

import "shopscout-engine/internal/domain"

// UIListing is the flattened row the frontend consumes.
type UIListing struct {
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	Rating         *float64 `json:"rating,omitempty"`
	Specifications []string `json:"specifications"`
	Link           string   `json:"link"`
	Image          string   `json:"image,omitempty"`
	Source         string   `json:"source"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
	RawTitle       string   `json:"rawTitle,omitempty"`
	Category       string   `json:"category,omitempty"`
}

func (r Renderer) MapForUI(l domain.Listing) UIListing {
	return UIListing{
		Name:           l.Title,
		Price:          FormatINR(l.Price),
		Rating:         l.Rating,
		Specifications: r.BuildSpecs(l),
		Link:           l.URL,
		Image:          l.Image,
		Source:         l.Source,
		ReviewCount:    l.ReviewCount,
		RawTitle:       l.Title,
		Category:       l.Category,
	}
}

func (r Renderer) MapMany(listings []domain.Listing) []UIListing {
	out := make([]UIListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, r.MapForUI(l))
	}
	return out
}
