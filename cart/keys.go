package cart

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
)

// Line-item keys are what survives reloads, so their format is the contract
// the sweep validates: "<cultivar-uuid>:<age>" for varieties, a bare product
// uuid for flat products.

const keySep = ":"

var errBadKey = errors.New("cart: malformed line item key")

// VarietyKey builds the composite key for a cultivar at a chosen age.
func VarietyKey(cultivarID string, ageYears int) string {
	return cultivarID + keySep + strconv.Itoa(ageYears)
}

// ProductKey builds the key for a flat product line.
func ProductKey(productID string) string {
	return productID
}

// KeyRef is a decoded line-item key.
type KeyRef struct {
	Kind     models.LineItemKind
	RefID    string
	AgeYears int // variety keys only
}

// ParseKey decodes and validates a key against the canonical identity
// format. Variety keys must split into exactly a UUID and a positive
// integer age; product keys must be a bare UUID.
func ParseKey(kind models.LineItemKind, key string) (KeyRef, error) {
	switch kind {
	case models.LineVariety:
		parts := strings.Split(key, keySep)
		if len(parts) != 2 {
			return KeyRef{}, errBadKey
		}
		id, err := uuid.Parse(parts[0])
		if err != nil {
			return KeyRef{}, errBadKey
		}
		age, err := strconv.Atoi(parts[1])
		if err != nil || age < 1 {
			return KeyRef{}, errBadKey
		}
		return KeyRef{Kind: kind, RefID: id.String(), AgeYears: age}, nil

	case models.LineProduct:
		id, err := uuid.Parse(key)
		if err != nil {
			return KeyRef{}, errBadKey
		}
		return KeyRef{Kind: kind, RefID: id.String()}, nil

	default:
		return KeyRef{}, errBadKey
	}
}
