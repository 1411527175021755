package pricing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kutu95/kamelie-greenhouse-sub001/models"
)

type fakeMatrix struct {
	rows map[string]models.PriceMatrixEntry
	err  error
}

func matrixKey(group Group, ageYears int, size string) string {
	return fmt.Sprintf("%s/%d/%s", group, ageYears, size)
}

func (f *fakeMatrix) Entry(group Group, ageYears int, size string) (models.PriceMatrixEntry, error) {
	if f.err != nil {
		return models.PriceMatrixEntry{}, f.err
	}
	row, ok := f.rows[matrixKey(group, ageYears, size)]
	if !ok {
		return models.PriceMatrixEntry{}, ErrNoEntry
	}
	return row, nil
}

func (f *fakeMatrix) Entries(group Group) ([]models.PriceMatrixEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.PriceMatrixEntry
	for _, row := range f.rows {
		if row.PriceGroup == string(group) {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestPriceMatrixHit(t *testing.T) {
	src := &fakeMatrix{rows: map[string]models.PriceMatrixEntry{
		matrixKey(GroupRare, 7, "10L"): {PriceGroup: "rare", AgeYears: 7, Size: "10L", Price: 180.00, Available: true},
	}}
	r := NewResolver(src)

	price, err := r.Price(GroupRare, 7, "10L")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if price != 180.00 {
		t.Fatalf("expected stored matrix price 180.00, got %.2f", price)
	}
}

func TestPriceMatrixMissUsesFallback(t *testing.T) {
	r := NewResolver(&fakeMatrix{rows: map[string]models.PriceMatrixEntry{}})

	// rare base 75.00 × age multiplier 2.0 (age 7) × size multiplier 1.3 (10L)
	price, err := r.Price(GroupRare, 7, "10L")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if price != 195.00 {
		t.Fatalf("expected fallback price 195.00, got %.2f", price)
	}
}

func TestPriceUnavailableEntryUsesFallback(t *testing.T) {
	src := &fakeMatrix{rows: map[string]models.PriceMatrixEntry{
		matrixKey(GroupRare, 7, "10L"): {PriceGroup: "rare", AgeYears: 7, Size: "10L", Price: 180.00, Available: false},
	}}
	r := NewResolver(src)

	price, err := r.Price(GroupRare, 7, "10L")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if price != 195.00 {
		t.Fatalf("unavailable entry must not be offered; expected fallback 195.00, got %.2f", price)
	}
}

func TestPriceSourceErrorUsesFallback(t *testing.T) {
	r := NewResolver(&fakeMatrix{err: errors.New("connection refused")})

	first, err := r.Price(GroupMedium, 4, "5L")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	second, err := r.Price(GroupMedium, 4, "5L")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if first != second {
		t.Fatalf("fallback must be deterministic: got %.2f then %.2f", first, second)
	}
	// medium base 45.00 × 1.5 × 1.15
	if first != 77.63 {
		t.Fatalf("expected 77.63, got %.2f", first)
	}
}

func TestPriceUnknownGroup(t *testing.T) {
	r := NewResolver(&fakeMatrix{})

	if _, err := r.Price(Group("exotic"), 3, "5L"); !errors.Is(err, ErrUnpriceable) {
		t.Fatalf("expected ErrUnpriceable, got %v", err)
	}
}

func TestFallbackPrice(t *testing.T) {
	cases := []struct {
		name  string
		group Group
		age   int
		size  string
		want  float64
	}{
		{"common young smallest pot", GroupCommon, 1, "2L", 25.00},
		{"common mid age unknown size", GroupCommon, 3, "", 37.50},
		{"medium six years 5L", GroupMedium, 6, "5L", 103.50},
		{"rare seven years 10L", GroupRare, 7, "10L", 195.00},
		{"rare old 50L", GroupRare, 11, "50L", 337.50},
		{"size label case-insensitive", GroupRare, 7, "10l", 195.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FallbackPrice(tc.group, tc.age, tc.size)
			if err != nil {
				t.Fatalf("FallbackPrice failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, got)
			}
			again, _ := FallbackPrice(tc.group, tc.age, tc.size)
			if again != got {
				t.Fatalf("fallback not deterministic: %.2f vs %.2f", got, again)
			}
		})
	}
}

func TestRangeScansAvailableEntries(t *testing.T) {
	src := &fakeMatrix{rows: map[string]models.PriceMatrixEntry{
		matrixKey(GroupMedium, 2, "2L"):  {PriceGroup: "medium", AgeYears: 2, Size: "2L", Price: 45.00, Available: true},
		matrixKey(GroupMedium, 5, "5L"):  {PriceGroup: "medium", AgeYears: 5, Size: "5L", Price: 89.00, Available: true},
		matrixKey(GroupMedium, 9, "20L"): {PriceGroup: "medium", AgeYears: 9, Size: "20L", Price: 240.00, Available: false},
	}}
	r := NewResolver(src)

	rng, err := r.Range(GroupMedium)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if rng.Min != 45.00 || rng.Max != 89.00 {
		t.Fatalf("expected range [45.00, 89.00], got [%.2f, %.2f]", rng.Min, rng.Max)
	}
	for _, size := range rng.Sizes {
		if size == "20L" {
			t.Fatal("unavailable entry's size must not be offered")
		}
	}
}

func TestRangeSourceErrorUsesFixedRange(t *testing.T) {
	r := NewResolver(&fakeMatrix{err: errors.New("connection refused")})

	rng, err := r.Range(GroupRare)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if rng.Min != fallbackRanges[GroupRare].Min || rng.Max != fallbackRanges[GroupRare].Max {
		t.Fatalf("expected fixed rare range, got [%.2f, %.2f]", rng.Min, rng.Max)
	}
	if len(rng.Sizes) == 0 {
		t.Fatal("fixed range must still offer sizes")
	}
}

func TestRangeUnknownGroup(t *testing.T) {
	r := NewResolver(&fakeMatrix{})

	if _, err := r.Range(Group("exotic")); !errors.Is(err, ErrUnpriceable) {
		t.Fatalf("expected ErrUnpriceable, got %v", err)
	}
}

func TestGroupFromString(t *testing.T) {
	if g, ok := GroupFromString("  Rare "); !ok || g != GroupRare {
		t.Fatalf("expected rare, got %q ok=%v", g, ok)
	}
	if _, ok := GroupFromString(""); ok {
		t.Fatal("empty label must not classify")
	}
	if _, ok := GroupFromString("legendary"); ok {
		t.Fatal("unknown label must not classify")
	}
}
