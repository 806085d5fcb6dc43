// Package search derives display lists from the approved catalogue: five
// AND-combined filter predicates, a sort key and fixed-size pagination.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// PageSize is the number of listings per page on every listing surface.
const PageSize = 8

// Sort keys. Anything else falls back to SortNewest.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortArea      = "area"
)

// TypeAll is the sentinel that disables the property-type filter.
const TypeAll = "all"

// Filters is a permissive-by-default filter configuration. The zero value of
// MaxPrice would match nothing, so build on DefaultFilters.
type Filters struct {
	// Term matches case-insensitively against title, location and
	// description; any one field containing it is a match. Empty matches all.
	Term string
	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice float64
	MaxPrice float64
	// BHK matches when empty or when the record's bhk label is among the
	// selected values.
	BHK []string
	// Type matches when empty, "all", or case-insensitively equal.
	Type string
	// Amenities matches when every selected amenity is present on the record.
	Amenities []string
}

func DefaultFilters() Filters {
	return Filters{MaxPrice: math.MaxFloat64}
}

// Matches reports whether p passes all five predicates. The predicates are
// independent, so their evaluation order never changes the outcome.
func (f Filters) Matches(p models.Property) bool {
	return f.matchesTerm(p) &&
		f.matchesPrice(p) &&
		f.matchesBHK(p) &&
		f.matchesType(p) &&
		f.matchesAmenities(p)
}

func (f Filters) matchesTerm(p models.Property) bool {
	if f.Term == "" {
		return true
	}
	term := strings.ToLower(f.Term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Location), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func (f Filters) matchesPrice(p models.Property) bool {
	return p.Price >= f.MinPrice && p.Price <= f.MaxPrice
}

func (f Filters) matchesBHK(p models.Property) bool {
	if len(f.BHK) == 0 {
		return true
	}
	for _, bhk := range f.BHK {
		if p.BHK == bhk {
			return true
		}
	}
	return false
}

func (f Filters) matchesType(p models.Property) bool {
	if f.Type == "" || strings.EqualFold(f.Type, TypeAll) {
		return true
	}
	return strings.EqualFold(p.Type, f.Type)
}

func (f Filters) matchesAmenities(p models.Property) bool {
	for _, want := range f.Amenities {
		found := false
		for _, have := range p.Amenities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the records passing the filter, preserving input order.
func Apply(records []models.Property, f Filters) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, p := range records {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortBy orders records in place by the given key. Ties keep their input
// order.
func SortBy(records []models.Property, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price < records[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price > records[j].Price
		})
	case SortArea:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Area > records[j].Area
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
	}
}

// Page is one page of a filtered, sorted result.
type Page struct {
	Items     []models.Property `json:"items"`
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
	Total     int               `json:"total"`
}

// Paginate slices records into 1-based pages of PageSize. Out-of-range page
// requests clamp to the nearest valid page; there is no wraparound. An empty
// input yields a valid empty page.
func Paginate(records []models.Property, page int) Page {
	total := len(records)
	pageCount := (total + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:     records[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}

// Run is the full pipeline: filter, sort, page.
func Run(records []models.Property, f Filters, sortKey string, page int) Page {
	filtered := Apply(records, f)
	SortBy(filtered, sortKey)
	return Paginate(filtered, page)
}
