// Package util holds the text-parsing helpers shared by the per-site
// normalizers. Everything is total: unparseable input yields nil.
package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	priceRx  = regexp.MustCompile(`(?i)(?:₹|inr\s*)\s*([0-9,]+)`)
	digitRx  = regexp.MustCompile(`([0-9][0-9,]*)`)
	ratingRx = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9])?)\s*out\s*of\s*5`)
)

// CleanText collapses runs of whitespace (including NBSP) to single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParsePrice pulls a numeric amount out of a price string, preferring a
// currency-prefixed figure and falling back to the first digit run.
func ParsePrice(text string) *float64 {
	if text == "" {
		return nil
	}
	raw := ""
	if m := priceRx.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := digitRx.FindStringSubmatch(text); m != nil {
		raw = m[1]
	}
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseCount extracts the first integer, commas stripped: "1,234 Ratings"
// becomes 1234.
func ParseCount(text string) *int {
	if text == "" {
		return nil
	}
	m := digitRx.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// ParseRating handles both "4.3 out of 5 stars" and a bare "4.3".
func ParseRating(text string) *float64 {
	if text == "" {
		return nil
	}
	if m := ratingRx.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &v
		}
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return &v
	}
	return nil
}
