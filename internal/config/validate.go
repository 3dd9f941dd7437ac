package config

import (
	"fmt"
	"math"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy plus everything wrong or
// suspicious about it. Errors block a save; warnings do not.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.DefaultSites = trimList(out.Search.DefaultSites)
	out.Lexicons.Brands = trimList(out.Lexicons.Brands)
	out.Lexicons.Colors = trimList(out.Lexicons.Colors)
	out.Lexicons.Materials = trimList(out.Lexicons.Materials)
	out.Lexicons.CPUs = trimList(out.Lexicons.CPUs)
	out.Lexicons.Panels = trimList(out.Lexicons.Panels)
	out.Lexicons.Bonus = trimList(out.Lexicons.Bonus)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Search.DefaultK < 1 || out.Search.DefaultK > 12 {
		res.addErr("search.default_k must be 1..12")
	}
	if out.Search.SourceTimeoutSeconds <= 0 {
		res.addErr("search.source_timeout_seconds must be > 0")
	}
	if out.Search.HostRatePerSec <= 0 {
		res.addErr("search.host_rate_per_sec must be > 0")
	} else if out.Search.HostRatePerSec > 5 {
		res.addWarn("search.host_rate_per_sec is high (%.1f); marketplaces throttle aggressive clients.", out.Search.HostRatePerSec)
	}
	if out.Search.HostRateBurst < 1 {
		res.addErr("search.host_rate_burst must be >= 1")
	}
	if len(out.Search.DefaultSites) == 0 {
		res.addErr("search.default_sites must name at least one site")
	}

	w := out.Scoring
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"similarity", w.Similarity}, {"price", w.Price}, {"rating", w.Rating},
		{"reviews", w.Reviews}, {"attributes", w.Attributes},
		{"keyword_hit", w.KeywordHit}, {"keyword_cap", w.KeywordCap},
	} {
		if f.v < 0 {
			res.addErr("scoring.%s must be >= 0", f.name)
		}
	}
	if base := w.Similarity + w.Price + w.Rating + w.Reviews + w.Attributes; math.Abs(base-1.0) > 0.02 {
		res.addWarn("scoring base weights sum to %.2f, not 1.0; scores will drift from the usual scale.", base)
	}

	for i, c := range out.Lexicons.Categories {
		if strings.TrimSpace(c.Key) == "" {
			res.addErr("lexicons.categories[%d].key is required", i)
		}
		if len(c.Any) == 0 {
			res.addErr("lexicons.categories[%d].any must have at least 1 term", i)
		}
	}

	return out, res
}
