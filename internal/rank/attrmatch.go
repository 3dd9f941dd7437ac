package rank

import (
	"strconv"
	"strings"

	"shopscout-engine/internal/domain"
)

// Per-filter-key point values. The denominator is built from the keys the
// user actually specified, so a listing is never penalized for constraints
// that were never asked for.
const (
	ptsBrand        = 1.0
	ptsBrandInTitle = 0.8
	ptsColor        = 0.5
	ptsMaterial     = 0.6
	ptsSize         = 0.5
	ptsCapacity     = 0.6
	ptsExactUnit    = 0.6
)

// capacityTolerance is in litres; listings within it count as a match.
const capacityTolerance = 0.5

// AttributeMatch compares constraint filters against a listing's attribute
// map and returns earned/possible points in [0,1]. No applicable filter key
// yields 0.0 ("no information", not "perfect match").
func AttributeMatch(l domain.Listing, c domain.Constraints) float64 {
	if len(c.Filters) == 0 {
		return 0.0
	}

	attrs := l.Attrs
	earned := 0.0
	possible := 0.0

	if brands := c.Filters.List("brand"); len(brands) > 0 {
		possible += ptsBrand
		listed := attrs.List("brand")
		if len(listed) == 0 {
			listed = attrs.List("maker")
		}
		switch {
		case anyOverlap(listed, brands):
			earned += ptsBrand
		case titleContainsAny(l.Title, brands):
			// extractor missed a structured brand but the title names one
			earned += ptsBrandInTitle
		}
	}

	if colors := c.Filters.List("color"); len(colors) > 0 {
		possible += ptsColor
		if anyOverlap(attrs.List("color"), colors) {
			earned += ptsColor
		}
	}

	if materials := c.Filters.List("material"); len(materials) > 0 {
		possible += ptsMaterial
		if anyOverlap(attrs.List("material"), materials) {
			earned += ptsMaterial
		}
	}

	for _, key := range []string{"size_uk", "size_us", "size_eu"} {
		want := c.Filters.Scalar(key)
		if want == "" {
			continue
		}
		possible += ptsSize
		if got := attrs.Scalar(key); got != "" && got == want {
			earned += ptsSize
		}
	}

	if want := c.Filters.Scalar("capacity_l"); want != "" {
		possible += ptsCapacity
		if capacityClose(want, attrs.Scalar("capacity_l")) {
			earned += ptsCapacity
		}
	}

	for _, key := range []string{"ram_gb", "storage_tb", "storage_gb", "battery_mah"} {
		want := c.Filters.Scalar(key)
		if want == "" {
			continue
		}
		possible += ptsExactUnit
		// string equality on purpose: both sides were extracted as strings,
		// which avoids spurious float precision mismatches
		if got := attrs.Scalar(key); got != "" && got == want {
			earned += ptsExactUnit
		}
	}

	if possible <= 0 {
		return 0.0
	}
	return clamp(earned/possible, 0.0, 1.0)
}

func anyOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[norm(v)] = true
	}
	for _, v := range b {
		if set[norm(v)] {
			return true
		}
	}
	return false
}

func titleContainsAny(title string, tokens []string) bool {
	t := strings.ToLower(title)
	for _, tok := range tokens {
		if tok != "" && strings.Contains(t, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// capacityClose parses both sides as litres; malformed values are a
// no-match, never an error.
func capacityClose(want, got string) bool {
	if want == "" || got == "" {
		return false
	}
	w, err := strconv.ParseFloat(want, 64)
	if err != nil {
		return false
	}
	g, err := strconv.ParseFloat(got, 64)
	if err != nil {
		return false
	}
	diff := w - g
	if diff < 0 {
		diff = -diff
	}
	return diff <= capacityTolerance
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
