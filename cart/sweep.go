package cart

import "github.com/kutu95/kamelie-greenhouse-sub001/models"

// Sweep removes structurally invalid line items from a persisted cart and
// reports how many were dropped. It runs on every cart load.
//
// A line is invalid when its key no longer decodes against the canonical
// identity format, or when its quantity is not a positive integer. Valid
// lines pass through untouched. Whether the referenced cultivar or product
// still exists server-side is deliberately not checked here: that is
// deferred to checkout so the cart stays usable without a round trip.
//
// Sweeping twice is the same as sweeping once.
func Sweep(items []models.CartLineItem) ([]models.CartLineItem, int) {
	kept := make([]models.CartLineItem, 0, len(items))
	removed := 0
	for _, it := range items {
		if _, err := ParseKey(it.Kind, it.Key); err != nil {
			removed++
			continue
		}
		if it.Quantity < 1 || it.UnitPrice < 0 {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	return kept, removed
}
