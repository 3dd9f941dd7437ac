// Package fsprovider serves saved search-result pages from a directory.
// Pages are captured out of band (browser export, recorded session) and
// dropped into the pages dir as <site>.html.
package fsprovider

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Provider struct {
	Dir string
}

func New(dir string) *Provider { return &Provider{Dir: dir} }

func (p *Provider) Document(ctx context.Context, site, query string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(p.Dir, site+".html")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page for %s: %w", site, err)
	}
	return f, nil
}
