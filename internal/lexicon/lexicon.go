// Package lexicon holds the fixed vocabularies the extractor and the query
// parser share, represented as data rather than control flow so new terms
// land in tables, not in branches.
package lexicon

import "strings"

// Category pairs a category key with the tokens that imply it. Order matters:
// the first category with a hit wins, so the slice below is a total order.
type Category struct {
	Key string   `yaml:"key"`
	Any []string `yaml:"any"`
}

// Set is the full vocabulary bundle. A config file may override individual
// fields; empty fields fall back to the built-in defaults via Merge.
type Set struct {
	Categories []Category `yaml:"categories"`
	Brands     []string   `yaml:"brands"`
	Colors     []string   `yaml:"colors"`
	Materials  []string   `yaml:"materials"`
	CPUs       []string   `yaml:"cpus"`
	Panels     []string   `yaml:"panels"`
	Bonus      []string   `yaml:"bonus"`
}

// Default returns the built-in vocabulary set.
func Default() Set {
	return Set{
		Categories: []Category{
			{Key: "electronics", Any: []string{
				"laptop", "notebook", "ultrabook", "macbook",
				"mobile", "smartphone", "phone", "earbuds", "headphones", "camera",
				"tablet", "ipad", "monitor", "tv", "television", "router", "printer",
				"smartwatch", "wearable", "ssd", "hdd", "pendrive", "power bank",
			}},
			{Key: "fashion", Any: []string{
				"shoes", "sneakers", "sandals", "heels", "loafers",
				"t-shirt", "shirt", "jeans", "kurta", "saree", "hoodie", "jacket",
				"backpack", "bag", "duffle", "wallet", "belt",
			}},
			{Key: "home-kitchen", Any: []string{
				"utensils", "cookware", "pan", "kadhai", "frying pan", "pressure cooker",
				"bottle", "flask", "mug", "tiffin", "lunch box", "container", "plate",
				"nonstick", "non-stick", "induction", "stainless", "cutlery",
			}},
			{Key: "appliances", Any: []string{
				"fridge", "refrigerator", "washing machine", "ac", "air conditioner",
				"microwave", "oven", "chimney", "cooler", "geyser", "water heater",
			}},
			{Key: "sports", Any: []string{
				"football", "cricket bat", "bat", "ball", "badminton", "racket",
				"dumbbell", "treadmill", "yoga", "gym bag",
			}},
			{Key: "beauty", Any: []string{
				"shampoo", "conditioner", "lotion", "cream", "facewash", "makeup",
				"lipstick", "perfume", "deodorant", "serum",
			}},
		},
		Brands: []string{
			"apple", "samsung", "oneplus", "xiaomi", "redmi", "realme", "oppo", "vivo",
			"dell", "hp", "lenovo", "asus", "acer", "msi", "lg", "sony", "boat", "jbl", "noise",
			"canon", "nikon", "sandisk", "seagate", "wd", "western digital",
			"nike", "adidas", "puma", "reebok", "bata", "woodland", "zara", "h&m", "levis",
			"allen solly", "us polo", "wildcraft", "american tourister", "skybag", "safari",
			"prestige", "pigeon", "hawkins", "milton", "cello", "borosil", "butterfly", "vinod",
			"whirlpool", "bosch", "ifb", "voltas", "panasonic", "hitachi", "haier", "godrej",
		},
		Colors: []string{
			"black", "white", "silver", "grey", "gray", "red", "blue", "green", "yellow", "pink",
			"purple", "orange", "gold", "rose", "beige", "brown", "maroon", "navy", "teal",
		},
		Materials: []string{
			"leather", "synthetic", "mesh", "cotton", "polyester", "nylon", "canvas", "suede",
			"stainless", "stainless steel", "steel", "cast iron", "aluminium", "aluminum",
			"ceramic", "glass", "bamboo", "wood", "nonstick", "non-stick",
		},
		CPUs: []string{
			"i3", "i5", "i7", "i9",
			"ryzen 3", "ryzen 5", "ryzen 7", "ryzen 9",
			"m1", "m2", "m3", "m4",
			"celeron", "pentium", "mediatek", "snapdragon", "exynos", "dimensity", "helio",
		},
		Panels: []string{
			"oled", "amoled", "ips", "tn", "va", "fhd", "full hd", "qhd", "uhd", "4k", "touch",
		},
		Bonus: []string{
			"gaming", "lightweight", "waterproof", "nonstick", "non-stick", "induction",
			"wireless", "bluetooth", "noise cancelling", "anc", "fast charging",
			"camera", "5g", "4g", "dual sim", "backlit", "fingerprint",
		},
	}
}

// Merge overlays non-empty fields of override onto base.
func Merge(base, override Set) Set {
	out := base
	if len(override.Categories) > 0 {
		out.Categories = override.Categories
	}
	if len(override.Brands) > 0 {
		out.Brands = override.Brands
	}
	if len(override.Colors) > 0 {
		out.Colors = override.Colors
	}
	if len(override.Materials) > 0 {
		out.Materials = override.Materials
	}
	if len(override.CPUs) > 0 {
		out.CPUs = override.CPUs
	}
	if len(override.Panels) > 0 {
		out.Panels = override.Panels
	}
	if len(override.Bonus) > 0 {
		out.Bonus = override.Bonus
	}
	return out
}

// Hits returns the vocabulary terms contained in text, in table order,
// duplicates removed. Text must already be lower-cased.
func Hits(text string, vocab []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, term := range vocab {
		if term == "" || seen[term] {
			continue
		}
		if strings.Contains(text, term) {
			seen[term] = true
			out = append(out, term)
		}
	}
	return out
}

// FirstCategory walks the ordered category table and returns the key of the
// first entry with any token hit, or "" when nothing matches.
func FirstCategory(text string, cats []Category) string {
	for _, c := range cats {
		for _, term := range c.Any {
			if term != "" && strings.Contains(text, term) {
				return c.Key
			}
		}
	}
	return ""
}
