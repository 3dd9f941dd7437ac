package domain

import "strings"

// AttributeMap is the shared attribute vocabulary extracted from any free
// text (a query or a listing title). Values are strings or []string so a
// query-side map and a title-side map compare key-by-key.
type AttributeMap map[string]any

// Scalar returns the value under key as a trimmed lower-cased string, or ""
// when the key is absent or holds a list.
func (m AttributeMap) Scalar(key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

// List returns the values under key as a string slice. A scalar is promoted
// to a single-element slice; missing keys yield nil.
func (m AttributeMap) List(key string) []string {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// Constraints is the structured form of a parsed shopping query.
// Filters only carries keys for which at least one value was detected.
type Constraints struct {
	Budget   *int         `json:"budget,omitempty"`
	Category string       `json:"category,omitempty"`
	Filters  AttributeMap `json:"filters"`
	Keywords []string     `json:"keywords"`
}

func (c Constraints) BudgetValue() (int, bool) {
	if c.Budget == nil {
		return 0, false
	}
	return *c.Budget, true
}
