// Package summary builds the short human-readable header for a result set.
package summary

import (
	"fmt"
	"strings"

	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/render"
)

// Apology is returned verbatim when ranking produced nothing.
const Apology = "I couldn't find good matches. Try tweaking the budget or adding a brand/material/size."

const titleClip = 72

// Summarize produces a deterministic multi-line summary: a headline, then
// lowest-price and highest-rated call-outs when such listings exist.
func Summarize(ranked []domain.Listing, c domain.Constraints, query string) string {
	if len(ranked) == 0 {
		return Apology
	}

	head := []string{fmt.Sprintf("Top %d picks", len(ranked))}
	if c.Category != "" {
		head = append(head, "in "+c.Category)
	}
	head = append(head, fmt.Sprintf("for: “%s”", query))
	if budget, ok := c.BudgetValue(); ok {
		b := float64(budget)
		head = append(head, fmt.Sprintf("(near budget %s)", render.FormatINR(&b)))
	}

	lines := []string{strings.Join(head, " ") + "."}

	if cheapest := minPrice(ranked); cheapest != nil {
		lines = append(lines, fmt.Sprintf("Lowest price: %s — %s [%s].",
			clip(cheapest.Title), render.FormatINR(cheapest.Price), cheapest.Source))
	}

	if top := maxRating(ranked); top != nil {
		line := fmt.Sprintf("Highest rated: %s — %g/5", clip(top.Title), *top.Rating)
		if top.Price != nil {
			line += ", " + render.FormatINR(top.Price)
		}
		line += fmt.Sprintf(" [%s].", top.Source)
		lines = append(lines, line)
	}

	return strings.Join(lines, " \n")
}

func minPrice(listings []domain.Listing) *domain.Listing {
	var best *domain.Listing
	for i := range listings {
		l := &listings[i]
		if l.Price == nil {
			continue
		}
		if best == nil || *l.Price < *best.Price {
			best = l
		}
	}
	return best
}

func maxRating(listings []domain.Listing) *domain.Listing {
	var best *domain.Listing
	for i := range listings {
		l := &listings[i]
		if l.Rating == nil {
			continue
		}
		if best == nil || *l.Rating > *best.Rating {
			best = l
		}
	}
	return best
}

func clip(s string) string {
	if len(s) <= titleClip {
		return s
	}
	return s[:titleClip]
}
