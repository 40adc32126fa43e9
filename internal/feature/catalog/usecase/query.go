// Package usecase implements the client-side catalog query engine:
// category filtering and sorting over a fully materialized listing
// set. Everything here is pure; the input slice is never mutated.
package usecase

import (
	"sort"
	"strconv"
	"strings"

	"adhub_backend/internal/feature/listing/domain/entity"
)

// FilterAll is the sentinel category that disables filtering.
const FilterAll = "all"

// Sort criteria accepted by Apply.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortLocation  = "location"
)

// Apply filters the listings by category and sorts them by the given
// criterion, returning a new slice. Sorting is stable: listings with
// equal keys keep their relative input order, so repeated renders do
// not visibly reorder ties. An unknown sortBy leaves the filtered
// order untouched.
func Apply(listings []entity.Listing, filterCategory, sortBy string) []entity.Listing {
	out := FilterByCategory(listings, filterCategory)

	switch sortBy {
	case SortNewest:
		// Descending ID: the store assigns IDs from a sequence, so
		// a higher ID means a later submission.
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return NormalizePrice(out[i].Price) < NormalizePrice(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return NormalizePrice(out[i].Price) > NormalizePrice(out[j].Price)
		})
	case SortLocation:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Location) < strings.ToLower(out[j].Location)
		})
	}

	return out
}

// FilterByCategory returns the listings matching the category, or all
// of them for the FilterAll sentinel. The result is always a fresh
// slice, even when nothing is filtered out.
func FilterByCategory(listings []entity.Listing, category string) []entity.Listing {
	out := make([]entity.Listing, 0, len(listings))
	for _, l := range listings {
		if category == FilterAll || l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// NormalizePrice derives a numeric sort key from a display price
// string: every non-digit character (currency symbol, separators,
// period suffix) is dropped and the remaining digits are parsed as a
// non-negative integer. A string with no digits normalizes to 0. The
// time unit is deliberately not converted: "₹10,000/week" and
// "₹10,000/month" share the same key.
func NormalizePrice(price string) int64 {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
