// Package render turns ranked listings into the shapes a UI consumes:
// short spec bullets, formatted prices and a flat result row.
package render

import (
	"fmt"
	"strings"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/domain"
)

const maxSpecs = 6

// minStructuredSpecs is the threshold below which the title is re-mined
// for additional attributes.
const minStructuredSpecs = 4

type specField struct {
	key   string
	label string
}

// genericOrder is the default field ordering; category-specific orders are
// prefixes spliced in front of it.
var genericOrder = []specField{
	{"brand", "Brand"}, {"cpu", "CPU"}, {"ram_gb", "RAM"},
	{"storage_tb", "Storage TB"}, {"storage_gb", "Storage GB"},
	{"battery_mah", "Battery"}, {"refresh_hz", "Refresh"},
	{"screen_in", "Screen"}, {"color", "Color"}, {"material", "Material"},
	{"capacity_l", "Capacity"}, {"watt", "Watt"}, {"size_uk", "UK"},
	{"size_us", "US"}, {"size_eu", "EU"}, {"panel", "Panel"},
}

var fashionOrder = []specField{
	{"size_uk", "UK"}, {"size_us", "US"}, {"size_eu", "EU"},
	{"material", "Material"}, {"color", "Color"}, {"brand", "Brand"},
}

var kitchenOrder = []specField{
	{"capacity_l", "Capacity"}, {"material", "Material"}, {"watt", "Watt"},
	{"brand", "Brand"}, {"color", "Color"},
}

func orderFor(category string) []specField {
	var prefix []specField
	switch category {
	case "fashion":
		prefix = fashionOrder
	case "home-kitchen", "appliances":
		prefix = kitchenOrder
	default:
		return genericOrder
	}

	seen := make(map[string]bool, len(prefix))
	for _, f := range prefix {
		seen[f.key] = true
	}
	out := append([]specField{}, prefix...)
	for _, f := range genericOrder {
		if !seen[f.key] {
			out = append(out, f)
		}
	}
	return out
}

// SpecLines converts an attribute map into at most six compact display
// strings. Category only influences field order, never content.
func SpecLines(category string, attrs domain.AttributeMap) []string {
	if len(attrs) == 0 {
		return nil
	}

	var specs []string
	for _, f := range orderFor(category) {
		v, ok := attrs[f.key]
		if !ok {
			continue
		}
		if line := shortLine(f.label, v); line != "" {
			specs = append(specs, line)
		}
		if len(specs) >= maxSpecs {
			break
		}
	}
	return specs
}

func shortLine(label string, v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return ""
		}
		return fmt.Sprintf("%s: %s", label, val)
	case []string:
		if len(val) == 0 {
			return ""
		}
		vals := val
		if len(vals) > 3 {
			vals = vals[:3]
		}
		return fmt.Sprintf("%s: %s", label, strings.Join(vals, ", "))
	}
	return ""
}

// Renderer builds UI rows; it re-derives attributes from titles when a
// listing's structured attrs are too sparse.
type Renderer struct {
	Extractor *attr.Extractor
}

func NewRenderer(ex *attr.Extractor) Renderer {
	return Renderer{Extractor: ex}
}

// BuildSpecs prefers structured attrs and falls back to title-derived ones
// when fewer than four lines came out, merging without duplicate lines and
// capping at six.
func (r Renderer) BuildSpecs(l domain.Listing) []string {
	specs := SpecLines(l.Category, l.Attrs)

	if len(specs) < minStructuredSpecs && r.Extractor != nil {
		for _, line := range SpecLines("", r.Extractor.Extract(l.Title)) {
			if len(specs) >= maxSpecs {
				break
			}
			dup := false
			for _, have := range specs {
				if have == line {
					dup = true
					break
				}
			}
			if !dup {
				specs = append(specs, line)
			}
		}
	}

	if len(specs) > maxSpecs {
		specs = specs[:maxSpecs]
	}
	return specs
}
