// Package queryparse turns a free-text shopping query into structured
// constraints: budget, category, attribute filters and a loose keyword bag.
package queryparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/lexicon"
)

var (
	underKRx    = regexp.MustCompile(`under\s*(\d+)\s*k\b`)
	budgetAnyRx = regexp.MustCompile(`(?:under|below|less than|<=)\s*([0-9][0-9,]*)`)
)

// Parser is stateless; Parse is pure and total.
type Parser struct {
	lex lexicon.Set
	ex  *attr.Extractor
}

func New(lex lexicon.Set) *Parser {
	return &Parser{lex: lex, ex: attr.New(lex)}
}

// Parse case-folds the query and extracts all constraint fields.
func (p *Parser) Parse(query string) domain.Constraints {
	return p.ParseInto(query, domain.Constraints{})
}

// ParseInto honors caller-seeded fields: a pre-set budget or category is
// kept as-is and parsing only fills the gaps.
func (p *Parser) ParseInto(query string, seed domain.Constraints) domain.Constraints {
	q := strings.ToLower(query)

	c := domain.Constraints{
		Budget:   seed.Budget,
		Category: seed.Category,
		Filters:  domain.AttributeMap{},
		Keywords: []string{},
	}

	if c.Budget == nil {
		c.Budget = parseBudget(q)
	}
	if c.Category == "" {
		c.Category = lexicon.FirstCategory(q, p.lex.Categories)
	}

	brands := lexicon.Hits(q, p.lex.Brands)
	colors := lexicon.Hits(q, p.lex.Colors)
	materials := lexicon.Hits(q, p.lex.Materials)

	setList := func(key string, vals []string) {
		if len(vals) > 0 {
			c.Filters[key] = vals
		}
	}
	setList("brand", brands)
	setList("color", colors)
	setList("material", materials)

	// Unit-pattern filters share the extractor's patterns so query-side and
	// title-side values compare as equal strings.
	extracted := p.ex.Extract(q)
	set := func(key, val string) {
		if val != "" {
			c.Filters[key] = val
		}
	}
	set("size_uk", extracted.Scalar("size_uk"))
	set("size_us", extracted.Scalar("size_us"))
	set("size_eu", extracted.Scalar("size_eu"))
	set("capacity_l", extracted.Scalar("capacity_l"))

	// RAM/storage figures are only trusted when the query literally mentions
	// the unit, and a GB figure is treated as storage only when it was not
	// already claimed as RAM. Known to misfire on unrelated "gb" substrings;
	// kept as-is for compatibility.
	hasGB := strings.Contains(q, "gb")
	ram := ""
	if hasGB {
		ram = extracted.Scalar("ram_gb")
		set("ram_gb", ram)
	}
	if strings.Contains(q, "tb") {
		set("storage_tb", extracted.Scalar("storage_tb"))
	}
	if hasGB && ram == "" {
		set("storage_gb", extracted.Scalar("storage_gb"))
	}
	set("battery_mah", extracted.Scalar("battery_mah"))

	c.Keywords = append(c.Keywords, brands...)
	c.Keywords = append(c.Keywords, colors...)
	c.Keywords = append(c.Keywords, materials...)
	for _, token := range p.lex.Bonus {
		if strings.Contains(q, token) {
			c.Keywords = append(c.Keywords, token)
		}
	}

	return c
}

// parseBudget tries "under N k" first; if that fires the literal-integer
// pattern is not consulted.
func parseBudget(q string) *int {
	if m := underKRx.FindStringSubmatch(q); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			b := int(math.Round(n * 1000))
			return &b
		}
	}
	if m := budgetAnyRx.FindStringSubmatch(q); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if n, err := strconv.Atoi(raw); err == nil {
			return &n
		}
	}
	return nil
}
