package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reTag = regexp.MustCompile(`^[a-z0-9-]{1,32}$`)
)

// ID validates a product or category identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reID.MatchString(s)
}

// Q sanitizes a free-text search query: trims and caps length. Search is
// substring matching over display text, so no character class is imposed.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// Qty clamps a requested quantity, defaulting to 1 and capping to avoid
// abuse.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// PriceBound parses an optional price filter bound. Anything non-numeric
// or negative reads as "no bound".
func PriceBound(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// Tags parses a comma-separated tag list, dropping malformed entries.
func Tags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && reTag.MatchString(t) {
			out = append(out, t)
		}
		if len(out) == 10 {
			break
		}
	}
	return out
}
