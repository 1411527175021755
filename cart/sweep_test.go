package cart

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
)

func varietyLine(key string, qty int) models.CartLineItem {
	return models.CartLineItem{Key: key, Kind: models.LineVariety, UnitPrice: 30.00, Quantity: qty}
}

func productLine(key string, qty int) models.CartLineItem {
	return models.CartLineItem{Key: key, Kind: models.LineProduct, UnitPrice: 12.90, Quantity: qty}
}

func TestSweepDropsMalformedKeys(t *testing.T) {
	id := uuid.NewString()

	cases := []struct {
		name string
		item models.CartLineItem
		keep bool
	}{
		{"valid variety key", varietyLine(id+":4", 1), true},
		{"valid product key", productLine(uuid.NewString(), 2), true},
		{"non-numeric age", varietyLine(id+":four", 1), false},
		{"negative age", varietyLine(id+":-3", 1), false},
		{"zero age", varietyLine(id+":0", 1), false},
		{"missing age part", varietyLine(id, 1), false},
		{"too many parts", varietyLine(id+":4:9", 1), false},
		{"non-uuid identity", varietyLine("black-lace:4", 1), false},
		{"non-uuid product key", productLine("fertilizer", 1), false},
		{"zero quantity", varietyLine(id+":4", 0), false},
		{"negative quantity", productLine(uuid.NewString(), -2), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kept, removed := Sweep([]models.CartLineItem{tc.item})
			if tc.keep && (len(kept) != 1 || removed != 0) {
				t.Fatalf("expected item to survive sweep, kept=%d removed=%d", len(kept), removed)
			}
			if !tc.keep && (len(kept) != 0 || removed != 1) {
				t.Fatalf("expected item to be dropped, kept=%d removed=%d", len(kept), removed)
			}
		})
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	items := []models.CartLineItem{
		varietyLine(uuid.NewString()+":4", 1),
		varietyLine("corrupt-key", 1),
		productLine(uuid.NewString(), 3),
		productLine("also corrupt", 2),
	}

	once, removedOnce := Sweep(items)
	twice, removedTwice := Sweep(once)

	if removedOnce != 2 {
		t.Fatalf("expected 2 removals on first sweep, got %d", removedOnce)
	}
	if removedTwice != 0 {
		t.Fatalf("second sweep must remove nothing, got %d", removedTwice)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("sweep(sweep(cart)) must equal sweep(cart)")
	}
}

func TestSweepDoesNotModifyValidItems(t *testing.T) {
	item := models.CartLineItem{
		Key:       VarietyKey(uuid.NewString(), 7),
		Kind:      models.LineVariety,
		Name:      "Middlemist Red",
		AgeYears:  7,
		Size:      "10L",
		UnitPrice: 195.00,
		Quantity:  2,
	}

	kept, removed := Sweep([]models.CartLineItem{item})
	if removed != 0 || len(kept) != 1 {
		t.Fatalf("valid item must survive, kept=%d removed=%d", len(kept), removed)
	}
	if !reflect.DeepEqual(kept[0], item) {
		t.Fatal("sweep must not touch a valid item's fields")
	}
}

func TestSweepToleratesPriceZeroPendingLines(t *testing.T) {
	// A line added while the matrix was unreachable has price 0 and
	// PricePending set. That is a degraded state, not a corrupt one.
	item := models.CartLineItem{
		Key:          VarietyKey(uuid.NewString(), 3),
		Kind:         models.LineVariety,
		UnitPrice:    0,
		PricePending: true,
		Quantity:     1,
	}

	kept, removed := Sweep([]models.CartLineItem{item})
	if removed != 0 || len(kept) != 1 {
		t.Fatal("pending-price line must survive the sweep")
	}
}
