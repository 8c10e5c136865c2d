package catalog

import (
	"sort"
	"strings"

	"creamery/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by SortBy. Anything else falls back to SortPopular.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortPopular   = "popular"
)

// SignatureFlavors are the ids featured on the homepage strip.
var SignatureFlavors = []string{"GarlicHerb", "SmokedPaprika"}

// Catalog is the read-only product set for a session, keyed by id.
type Catalog map[string]models.Product

// FromProducts builds a Catalog from a product feed slice.
func FromProducts(products []models.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// MostPopular returns the product with the numerically smallest
// popularity value. Ties go to the first one encountered. The second
// return is false only for an empty input.
func MostPopular(products []models.Product) (models.Product, bool) {
	var best models.Product
	found := false
	for _, p := range products {
		if !found || p.Popularity < best.Popularity {
			best = p
			found = true
		}
	}
	return best, found
}

// Signature resolves the signature flavor ids against the catalog,
// skipping any id the catalog does not carry.
func Signature(c Catalog) []models.Product {
	out := make([]models.Product, 0, len(SignatureFlavors))
	for _, id := range SignatureFlavors {
		if p, ok := c[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Search filters by case-insensitive substring match on the name.
// An empty query matches everything.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// SortBy returns a sorted copy of products; the input slice is left
// untouched. The sort is stable.
func SortBy(products []models.Product, key string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortPopular:
		fallthrough
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity < out[j].Popularity })
	}
	return out
}
