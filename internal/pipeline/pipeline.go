// Package pipeline runs one search end to end: parse the query, fetch and
// normalize listings per site, rank, render, summarize.
package pipeline

import (
	"context"
	"log"
	"strings"
	"time"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/queryparse"
	"shopscout-engine/internal/rank"
	"shopscout-engine/internal/render"
	"shopscout-engine/internal/source"
	"shopscout-engine/internal/source/amazon"
	"shopscout-engine/internal/source/flipkart"
	"shopscout-engine/internal/source/util"
	"shopscout-engine/internal/summary"
)

const (
	DefaultK = 6
	MaxK     = 12
)

// Options fixes the collaborators for an Engine. Zero-value fields get
// sensible defaults except Provider, which every fetcher needs.
type Options struct {
	Parser    *queryparse.Parser
	Extractor *attr.Extractor
	Scorer    rank.Scorer
	Provider  source.DocumentProvider
	Limiter   *util.HostLimiter

	// sites used when a request names none
	DefaultSites []string
	// per-source fetch bound
	SourceTimeout time.Duration
}

type Engine struct {
	opts     Options
	renderer render.Renderer
}

func New(opts Options) *Engine {
	if len(opts.DefaultSites) == 0 {
		opts.DefaultSites = []string{amazon.Name, flipkart.Name}
	}
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = source.DefaultTimeout
	}
	return &Engine{opts: opts, renderer: render.NewRenderer(opts.Extractor)}
}

// Request is one search invocation. MaxPrice, Sites, K and CategoryHint
// are optional structured overrides on top of the free-text query.
type Request struct {
	Query        string   `json:"query"`
	MaxPrice     *int     `json:"maxPrice,omitempty"`
	Sites        []string `json:"sites,omitempty"`
	K            int      `json:"k,omitempty"`
	CategoryHint string   `json:"categoryHint,omitempty"`
}

// Result is one ranked row plus its score.
type Result struct {
	render.UIListing
	Score float64 `json:"score"`
}

type Debug struct {
	Constraints domain.Constraints `json:"constraints"`
	RawCount    int                `json:"rawCount"`
	Sites       []string           `json:"sites"`
	ElapsedMS   int64              `json:"elapsedMs"`
}

type Response struct {
	Query string `json:"query"`
	// TopK carries the ranked listings in domain form; Results is the
	// same rows flattened for display.
	TopK    []domain.Listing `json:"topK"`
	Results []Result         `json:"results"`
	Summary string           `json:"summary"`
	Debug   Debug            `json:"debug"`
}

// Search runs the full pipeline for one request. It never returns an
// error for a fruitless search; an empty result set with the apology
// summary is the degraded answer.
func (e *Engine) Search(ctx context.Context, req Request) Response {
	start := time.Now()

	k := req.K
	if k <= 0 {
		k = DefaultK
	}
	if k > MaxK {
		k = MaxK
	}

	seed := domain.Constraints{Budget: req.MaxPrice, Category: strings.ToLower(strings.TrimSpace(req.CategoryHint))}
	cons := e.opts.Parser.ParseInto(req.Query, seed)

	sites := req.Sites
	if len(sites) == 0 {
		sites = e.opts.DefaultSites
	}

	searchQuery := buildSearchQuery(req.Query, cons)
	fetchers, used := e.fetchers(searchQuery, cons, sites)

	raw := source.Run(ctx, fetchers, source.RunOpts{
		Timeout: e.opts.SourceTimeout,
		Limiter: e.opts.Limiter,
	})

	ranked := e.opts.Scorer.Rank(raw, cons, req.Query, k)

	results := make([]Result, 0, len(ranked))
	plain := make([]domain.Listing, 0, len(ranked))
	for _, s := range ranked {
		results = append(results, Result{UIListing: e.renderer.MapForUI(s.Listing), Score: s.Score})
		plain = append(plain, s.Listing)
	}

	resp := Response{
		Query:   req.Query,
		TopK:    plain,
		Results: results,
		Summary: summary.Summarize(plain, cons, req.Query),
		Debug: Debug{
			Constraints: cons,
			RawCount:    len(raw),
			Sites:       used,
			ElapsedMS:   time.Since(start).Milliseconds(),
		},
	}
	log.Printf("[pipeline] query=%q sites=%d raw=%d ranked=%d elapsed=%s",
		req.Query, len(used), len(raw), len(results), time.Since(start).Round(time.Millisecond))
	return resp
}

// fetchers builds one fetcher per known site name, preserving request
// order. Unknown names are logged and skipped.
func (e *Engine) fetchers(query string, cons domain.Constraints, sites []string) ([]source.Fetcher, []string) {
	var fs []source.Fetcher
	var used []string
	for _, s := range sites {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case amazon.Name:
			fs = append(fs, &amazon.Fetcher{Query: query, Constraints: cons, Provider: e.opts.Provider, Extractor: e.opts.Extractor})
			used = append(used, amazon.Name)
		case flipkart.Name:
			fs = append(fs, &flipkart.Fetcher{Query: query, Constraints: cons, Provider: e.opts.Provider, Extractor: e.opts.Extractor})
			used = append(used, flipkart.Name)
		case "":
		default:
			log.Printf("[pipeline] unknown site %q skipped", s)
		}
	}
	return fs, used
}

// buildSearchQuery appends inferred category and brand terms that are not
// already in the query text, so the marketplaces see them. Brands parsed
// out of the query itself are naturally contained and left alone.
func buildSearchQuery(query string, cons domain.Constraints) string {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)

	add := func(term string) {
		if term == "" || strings.Contains(lower, term) {
			return
		}
		q += " " + term
		lower += " " + term
	}
	add(cons.Category)
	for _, b := range cons.Filters.List("brand") {
		add(b)
	}
	return q
}
