package source

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/source/util"
)

// DefaultTimeout bounds a single source's fetch.
const DefaultTimeout = 12 * time.Second

type RunOpts struct {
	Timeout time.Duration
	Limiter *util.HostLimiter
}

// Run fetches every source concurrently and merges listings in fetcher
// order, so upstream ordering (and therefore dedup survivorship) is
// reproducible. Errors and timeouts degrade that source to zero listings
// and never cancel siblings. Zero fetchers yield an empty slice.
func Run(ctx context.Context, fetchers []Fetcher, opts RunOpts) []domain.Listing {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	chunks := make([][]domain.Listing, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			if opts.Limiter != nil {
				if h, ok := f.(URLHinter); ok {
					if err := opts.Limiter.WaitURL(fctx, h.SearchURL()); err != nil {
						log.Printf("[%s] rate wait aborted: %v", f.Name(), err)
						return nil
					}
				}
			}

			log.Printf("[%s] fetching...", f.Name())
			res, err := f.Fetch(fctx)
			if err != nil {
				// best-effort: log and keep the siblings running
				log.Printf("[source:%s] error: %v", f.Name(), err)
				return nil
			}
			chunks[i] = res.Listings
			return nil
		})
	}
	_ = g.Wait()

	merged := make([]domain.Listing, 0)
	for i, ch := range chunks {
		if len(ch) > 0 {
			log.Printf("[run] source=%s listings=%d", fetchers[i].Name(), len(ch))
		}
		merged = append(merged, ch...)
	}
	return merged
}
