package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"padelmania/internal/domain"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter is the set of user-chosen criteria narrowing the catalog view.
// Nil price bounds mean "no bound". All criteria are AND-combined; the
// tag set matches when at least one requested tag is present.
type Filter struct {
	Category string
	MinPrice *int
	MaxPrice *int
	Search   string
	Tags     []string
	InStock  bool
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// FilterProducts returns the products passing every criterion of f, in
// catalog order. The input slice is never modified.
func FilterProducts(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matches(p domain.Product) bool {
	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" {
		text := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " "))
		if !strings.Contains(text, strings.ToLower(f.Search)) {
			return false
		}
	}
	if len(f.Tags) > 0 && !hasAnyTag(p.Tags, f.Tags) {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// SortProducts returns a sorted copy of products. The sort is stable and
// the input slice is never modified. Name ordering uses Spanish collation
// so accented titles sort the way the storefront displays them; missing
// creation timestamps sort as oldest under SortNewest.
func SortProducts(products []domain.Product, key SortKey) []domain.Product {
	out := append([]domain.Product(nil), products...)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Title, out[j].Title) < 0 })
	case SortNameDesc:
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Title, out[j].Title) > 0 })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// Recommend picks up to limit in-stock siblings of the same category,
// excluding the product itself, in natural catalog order. Fewer matches
// than limit is fine.
func Recommend(products []domain.Product, excludeID, category string, limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID != excludeID && p.Category == category && p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out
}
