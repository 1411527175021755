package pricing

import (
	"errors"
	"log"
	"math"

	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"gorm.io/gorm"
)

var (
	// ErrUnpriceable means the cultivar has no valid price group. There is
	// no fallback for this: the item cannot be offered for purchase.
	ErrUnpriceable = errors.New("pricing: no valid price group")

	// ErrNoEntry is returned by a MatrixSource when the (group, age, size)
	// key has no row.
	ErrNoEntry = errors.New("pricing: no matrix entry")
)

// MatrixSource reads the authoritative price matrix.
type MatrixSource interface {
	// Entry returns the matrix row for an exact (group, age, size) key,
	// or ErrNoEntry if the key has no row.
	Entry(group Group, ageYears int, size string) (models.PriceMatrixEntry, error)
	// Entries returns all matrix rows for a group.
	Entries(group Group) ([]models.PriceMatrixEntry, error)
}

// Range summarizes the prices on offer for a group, for "from €X" display.
type Range struct {
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`
	Sizes []string `json:"sizes"`
}

// Hardcoded ranges used when the matrix cannot be reached at all.
var fallbackRanges = map[Group]Range{
	GroupCommon: {Min: 25.00, Max: 81.25, Sizes: []string{"2L", "5L", "10L"}},
	GroupMedium: {Min: 45.00, Max: 146.25, Sizes: []string{"2L", "5L", "10L"}},
	GroupRare:   {Min: 75.00, Max: 243.75, Sizes: []string{"2L", "5L", "10L"}},
}

// Resolver prices (group, age, size) combinations against the matrix,
// falling back to a deterministic formula when the matrix has no usable row.
type Resolver struct {
	src MatrixSource
}

func NewResolver(src MatrixSource) *Resolver {
	return &Resolver{src: src}
}

// Price resolves the unit price for a cultivar of the given group and age in
// the given container. The stored matrix price wins when the row exists and
// is available; a missing, unavailable or unreachable row falls back to
// FallbackPrice. An invalid group is the only unrecoverable case.
func (r *Resolver) Price(group Group, ageYears int, size string) (float64, error) {
	if _, ok := basePrices[group]; !ok {
		return 0, ErrUnpriceable
	}

	entry, err := r.src.Entry(group, ageYears, size)
	if err == nil && entry.Available {
		return round2(entry.Price), nil
	}
	if err != nil && !errors.Is(err, ErrNoEntry) {
		log.Printf("⚠️ price matrix lookup failed, using fallback formula: %v", err)
	}

	return FallbackPrice(group, ageYears, size)
}

// FallbackPrice computes the closed-form price: group base × age multiplier
// × size multiplier, rounded to 2 decimals. Pure and deterministic, so
// repeated calls with the same inputs always agree.
func FallbackPrice(group Group, ageYears int, size string) (float64, error) {
	base, ok := basePrices[group]
	if !ok {
		return 0, ErrUnpriceable
	}
	return round2(base * ageMultiplier(ageYears) * sizeMultiplier(size)), nil
}

// Range scans the matrix for a group's available rows and reports
// (min, max, sizes). When the matrix is unreachable it falls back to fixed
// per-group ranges so catalog pages can still render.
func (r *Resolver) Range(group Group) (Range, error) {
	if _, ok := basePrices[group]; !ok {
		return Range{}, ErrUnpriceable
	}

	entries, err := r.src.Entries(group)
	if err != nil {
		log.Printf("⚠️ price matrix range scan failed, using fixed range: %v", err)
		return fallbackRanges[group], nil
	}

	var rng Range
	seen := map[string]bool{}
	first := true
	for _, e := range entries {
		if !e.Available {
			continue
		}
		if first || e.Price < rng.Min {
			rng.Min = e.Price
		}
		if first || e.Price > rng.Max {
			rng.Max = e.Price
		}
		first = false
		if !seen[e.Size] {
			seen[e.Size] = true
			rng.Sizes = append(rng.Sizes, e.Size)
		}
	}
	if first {
		// Group exists but has no available rows; fall back so the
		// catalog never shows an empty price.
		return fallbackRanges[group], nil
	}
	return rng, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GormMatrix is the production MatrixSource backed by the price_matrix table.
type GormMatrix struct {
	db *gorm.DB
}

func NewGormMatrix(db *gorm.DB) *GormMatrix {
	return &GormMatrix{db: db}
}

func (m *GormMatrix) Entry(group Group, ageYears int, size string) (models.PriceMatrixEntry, error) {
	var entry models.PriceMatrixEntry
	err := m.db.
		Where("price_group = ? AND age_years = ? AND size = ?", string(group), ageYears, size).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PriceMatrixEntry{}, ErrNoEntry
		}
		return models.PriceMatrixEntry{}, err
	}
	return entry, nil
}

func (m *GormMatrix) Entries(group Group) ([]models.PriceMatrixEntry, error) {
	var entries []models.PriceMatrixEntry
	if err := m.db.
		Where("price_group = ?", string(group)).
		Order("age_years, size").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
