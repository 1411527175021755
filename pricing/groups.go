package pricing

import (
	"strings"

	"github.com/kutu95/kamelie-greenhouse-sub001/models"
)

// Group is the rarity tier of a cultivar. It drives the base price curve:
// the rarer the cultivar, the steeper the curve.
type Group string

const (
	GroupCommon Group = "common"
	GroupMedium Group = "medium"
	GroupRare   Group = "rare"
)

// Base prices per group in EUR, for the fallback formula.
var basePrices = map[Group]float64{
	GroupCommon: 25.00,
	GroupMedium: 45.00,
	GroupRare:   75.00,
}

// Container-size multipliers for the fallback formula. Unknown labels
// price as the smallest container.
var sizeMultipliers = map[string]float64{
	"2L":  1.0,
	"5L":  1.15,
	"10L": 1.3,
	"20L": 1.5,
	"50L": 1.8,
}

// GroupFromString normalizes a stored label to a Group.
// Returns false for empty or unrecognized labels.
func GroupFromString(s string) (Group, bool) {
	switch Group(strings.ToLower(strings.TrimSpace(s))) {
	case GroupCommon:
		return GroupCommon, true
	case GroupMedium:
		return GroupMedium, true
	case GroupRare:
		return GroupRare, true
	default:
		return "", false
	}
}

// GroupOf classifies a cultivar by its price group. A cultivar without a
// valid group is unpriceable and must not be offered for purchase.
func GroupOf(c models.Cultivar) (Group, bool) {
	return GroupFromString(c.PriceGroup)
}

func ageMultiplier(ageYears int) float64 {
	switch {
	case ageYears <= 2:
		return 1.0
	case ageYears <= 5:
		return 1.5
	case ageYears <= 10:
		return 2.0
	default:
		return 2.5
	}
}

func sizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[strings.ToUpper(strings.TrimSpace(size))]; ok {
		return m
	}
	return 1.0
}
