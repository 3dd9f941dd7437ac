// Package flipkart normalizes a Flipkart search-results document into
// listings. Flipkart rotates its class names between layouts, so every
// field is read through a selector fallback chain.
package flipkart

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
	Name    = "flipkart"
	baseURL = "https://www.flipkart.com"

	maxCards       = 40
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
	return baseURL + "/search?q=" + url.QueryEscape(f.Query)
}

func (f *Fetcher) Fetch(ctx context.Context) (source.Result, error) {
	doc, err := f.Provider.Document(ctx, Name, f.Query)
	if err != nil {
		return source.Result{Source: Name}, fmt.Errorf("flipkart document: %w", err)
	}
	defer doc.Close()

	listings, err := Parse(doc, f.Constraints, f.Extractor)
	if err != nil {
		return source.Result{Source: Name}, err
	}
	return source.Result{Source: Name, Listings: listings}, nil
}

// firstText returns the cleaned text of the first selector in the chain
// that matches under sel.
func firstText(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if t := util.CleanText(sel.Find(s).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func firstAttr(sel *goquery.Selection, attrName string, selectors ...string) string {
	for _, s := range selectors {
		if v, ok := sel.Find(s).First().Attr(attrName); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Parse walks the result cards and keeps every row that yields a title
// and a link.
func Parse(r io.Reader, c domain.Constraints, ex *attr.Extractor) ([]domain.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("flipkart parse html: %w", err)
	}

	cards := doc.Find("div._1AtVbE")
	if cards.Length() == 0 {
		cards = doc.Find("div._2kHMtA, a._1fQZEK, a.s1Q9rs")
	}

	budget, hasBudget := c.BudgetValue()

	var out []domain.Listing
	cards.EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= maxCards {
			return false
		}

		title := firstText(card, "div._4rR01T", "a._1fQZEK", "a.s1Q9rs", "div.KzDlHZ", "a.IRpwTa")
		link := firstAttr(card, "href", "a._1fQZEK", "a.s1Q9rs", "a._2UzuFa", "a.IRpwTa")
		// grid layouts make the card itself the anchor
		if v, ok := card.Attr("href"); ok && strings.TrimSpace(v) != "" {
			if link == "" {
				link = strings.TrimSpace(v)
			}
			if title == "" {
				title = util.CleanText(card.Text())
			}
		}
		if title == "" || link == "" {
			return true
		}

		priceText := firstText(card, "div._30jeq3._1_WHN1", "div._30jeq3", "div.Nx9bqj.CxhGGd")
		ratingText := firstText(card, "div._3LWZlK")
		reviewsText := firstText(card, "span._2_R_DZ", "span.Wphh3N")
		img := firstAttr(card, "src", "img[loading]", "img._396cs4", "img.DByuf4")

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
