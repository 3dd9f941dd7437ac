// Package source runs per-marketplace fetchers concurrently and merges
// their normalized listings. A failing or slow source degrades to nothing;
// it never takes the run down with it.
package source

import (
	"context"
	"io"

	"shopscout-engine/internal/domain"
)

// Result is one source's contribution to a search run.
type Result struct {
	Source   string
	Listings []domain.Listing
}

// Fetcher produces normalized listings for one marketplace.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}

// URLHinter is optionally implemented by fetchers that resolve against a
// marketplace host; the runner uses it for per-host rate pacing.
type URLHinter interface {
	SearchURL() string
}

// DocumentProvider hands the engine a search-results document for a site.
// Navigation and DOM automation live behind this seam, outside the engine.
type DocumentProvider interface {
	Document(ctx context.Context, site, query string) (io.ReadCloser, error)
}
