package transform

import (
	"sort"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// ExtractProducts projects staging rows into the product dimension,
// restricted to the sampled set. A product id may appear in staging with
// differing category and brand metadata; the row with the lexicographically
// smallest (brand, category_code) wins, so the dimension is stable across
// runs. Sampled ids with no staging rows are dropped silently.
func ExtractProducts(events []warehouse.StagingEvent, sample ProductSet) []warehouse.Product {
	best := make(map[string]warehouse.Product)
	for _, e := range events {
		if !sample.Contains(e.ProductID) {
			continue
		}
		candidate := warehouse.Product{
			ProductID:    e.ProductID,
			CategoryID:   e.CategoryID,
			CategoryCode: e.CategoryCode,
			Brand:        e.Brand,
		}
		current, ok := best[e.ProductID]
		if !ok || productLess(candidate, current) {
			best[e.ProductID] = candidate
		}
	}

	products := make([]warehouse.Product, 0, len(best))
	for _, p := range best {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductID < products[j].ProductID
	})
	return products
}

// productLess orders duplicate rows of one product id by (brand,
// category_code) ascending.
func productLess(a, b warehouse.Product) bool {
	if a.Brand != b.Brand {
		return a.Brand < b.Brand
	}
	return a.CategoryCode < b.CategoryCode
}
