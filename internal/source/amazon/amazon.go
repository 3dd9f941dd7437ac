// Package amazon normalizes an Amazon search-results document into
// listings. It never navigates; the document arrives through a provider.
package amazon

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/source"
	"shopscout-engine/internal/source/util"
)

const (
	Name    = "amazon"
	baseURL = "https://www.amazon.in"

	// result cards per page worth normalizing
	maxCards = 36

	// listings priced beyond this multiple of the budget are dropped early;
	// headroom is kept for variants and near-misses
	budgetHeadroom = 2.2
)

type Fetcher struct {
	Query       string
	Constraints domain.Constraints
	Provider    source.DocumentProvider
	Extractor   *attr.Extractor
}

func (f *Fetcher) Name() string { return Name }

func (f *Fetcher) SearchURL() string {
	return baseURL + "/s?k=" + url.QueryEscape(f.Query)
}

func (f *Fetcher) Fetch(ctx context.Context) (source.Result, error) {
	doc, err := f.Provider.Document(ctx, Name, f.Query)
	if err != nil {
		return source.Result{Source: Name}, fmt.Errorf("amazon document: %w", err)
	}
	defer doc.Close()

	listings, err := Parse(doc, f.Constraints, f.Extractor)
	if err != nil {
		return source.Result{Source: Name}, err
	}
	return source.Result{Source: Name, Listings: listings}, nil
}

// Parse walks the search-result cards and keeps every row that yields a
// title and a link, attaching title-derived attributes.
func Parse(r io.Reader, c domain.Constraints, ex *attr.Extractor) ([]domain.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("amazon parse html: %w", err)
	}

	budget, hasBudget := c.BudgetValue()

	var out []domain.Listing
	doc.Find("div.s-main-slot div[data-component-type='s-search-result']").
		EachWithBreak(func(i int, card *goquery.Selection) bool {
			if i >= maxCards {
				return false
			}

			title := util.CleanText(card.Find("h2 a span").First().Text())
			link, _ := card.Find("h2 a").First().Attr("href")
			link = strings.TrimSpace(link)
			if title == "" || link == "" {
				return true
			}

			priceText := util.CleanText(card.Find(".a-price .a-offscreen").First().Text())
			ratingText := util.CleanText(card.Find("span.a-icon-alt").First().Text())
			reviewsText := util.CleanText(card.Find("span[aria-label*='ratings'], span[aria-label*='rating']").First().Text())
			img, _ := card.Find("img.s-image").First().Attr("src")

			price := util.ParsePrice(priceText)
			if hasBudget && price != nil && *price > float64(budget)*budgetHeadroom {
				return true
			}

			if strings.HasPrefix(link, "/") {
				link = baseURL + link
			}

			out = append(out, domain.Listing{
				Title:       title,
				Price:       price,
				Currency:    "INR",
				Rating:      util.ParseRating(ratingText),
				ReviewCount: util.ParseCount(reviewsText),
				URL:         link,
				Image:       img,
				Source:      Name,
				Category:    c.Category,
				Attrs:       ex.Extract(title),
				Raw: map[string]string{
					"price_text":   priceText,
					"rating_text":  ratingText,
					"reviews_text": reviewsText,
				},
			})
			return true
		})

	return out, nil
}
