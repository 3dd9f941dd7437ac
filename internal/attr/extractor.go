// Package attr extracts the shared attribute vocabulary from free text.
// The same extraction runs over queries and listing titles so both sides
// speak identical keys.
package attr

import (
	"regexp"
	"strings"

	"shopscout-engine/internal/domain"
	"shopscout-engine/internal/lexicon"
)

var (
	ramRx       = regexp.MustCompile(`\b(\d{1,2})\s*gb(?:\s*ram)?\b`)
	storageTBRx = regexp.MustCompile(`\b(\d(?:\.\d)?)\s*tb\b`)
	storageGBRx = regexp.MustCompile(`\b(\d{2,4})\s*gb\b`)
	batteryRx   = regexp.MustCompile(`\b(\d{3,5})\s*mah\b`)
	refreshRx   = regexp.MustCompile(`\b(60|90|120|144|165|240)\s*hz\b`)
	screenRx    = regexp.MustCompile(`\b(\d{2}(?:\.\d)?)\s*inch(?:es)?\b`)
	sizeUKRx    = regexp.MustCompile(`\buk\s*(\d{1,2})\b`)
	sizeUSRx    = regexp.MustCompile(`\bus\s*(\d{1,2})\b`)
	sizeEURx    = regexp.MustCompile(`\beu\s*(\d{1,2})\b`)
	litreRx     = regexp.MustCompile(`\b(\d{1,3})(?:\.?\d*)\s*(?:l|litre|liters|litres)\b`)
	capRx       = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*l\b`)
	wattRx      = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*w\b`)
)

// Extractor maps free text to an AttributeMap using the unit patterns above
// plus the token vocabularies of its lexicon set.
type Extractor struct {
	lex lexicon.Set
}

func New(lex lexicon.Set) *Extractor {
	return &Extractor{lex: lex}
}

// First returns the first capture group of rx in text, or "".
func First(rx *regexp.Regexp, text string) string {
	m := rx.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Extract never fails: attributes that do not appear are simply absent.
// Values stay strings so later comparisons are exact and locale-stable.
func (e *Extractor) Extract(text string) domain.AttributeMap {
	t := strings.ToLower(text)
	attrs := domain.AttributeMap{}

	set := func(key, val string) {
		if val != "" {
			attrs[key] = val
		}
	}

	ramLoc := ramRx.FindStringSubmatchIndex(t)
	if ramLoc != nil {
		attrs["ram_gb"] = t[ramLoc[2]:ramLoc[3]]
	}

	// TB takes precedence: a title quoting storage in TB must not also
	// yield a storage_gb from some other GB figure in the same text.
	storageTB := First(storageTBRx, t)
	set("storage_tb", storageTB)
	if storageTB == "" {
		set("storage_gb", storageGB(t, ramLoc))
	}

	set("battery_mah", First(batteryRx, t))
	set("refresh_hz", First(refreshRx, t))
	set("screen_in", First(screenRx, t))

	set("size_uk", First(sizeUKRx, t))
	set("size_us", First(sizeUSRx, t))
	set("size_eu", First(sizeEURx, t))

	lit := First(litreRx, t)
	if lit == "" {
		lit = First(capRx, t)
	}
	set("capacity_l", lit)
	set("watt", First(wattRx, t))

	setList := func(key string, vocab []string) {
		if hits := lexicon.Hits(t, vocab); len(hits) > 0 {
			attrs[key] = hits
		}
	}
	setList("cpu", e.lex.CPUs)
	setList("panel", e.lex.Panels)
	setList("material", e.lex.Materials)
	setList("color", e.lex.Colors)

	return attrs
}

// storageGB returns the first GB figure that does not reuse the RAM match,
// so "16gb ram, 512gb storage" yields 16 for RAM and 512 for storage.
func storageGB(t string, ramLoc []int) string {
	for _, loc := range storageGBRx.FindAllStringSubmatchIndex(t, -1) {
		if ramLoc != nil && loc[0] < ramLoc[1] && loc[1] > ramLoc[0] {
			continue
		}
		return t[loc[2]:loc[3]]
	}
	return ""
}
