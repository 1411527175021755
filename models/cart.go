package models

import "time"

type LineItemKind string

const (
	LineVariety LineItemKind = "variety" // a cultivar at a chosen age
	LineProduct LineItemKind = "product" // a flat-priced shop article
)

// CartLineItem is one row of a customer's cart. Variety lines are keyed by
// "<cultivar-id>:<age>", product lines by the bare product id, so re-adding
// the same selection increments Quantity instead of appending a duplicate.
type CartLineItem struct {
	Key          string       `json:"key"`
	Kind         LineItemKind `json:"kind"`
	Name         string       `json:"name"`
	AgeYears     int          `json:"age_years,omitempty"` // variety lines only
	Size         string       `json:"size,omitempty"`      // container label, variety lines only
	UnitPrice    float64      `json:"unit_price"`
	PricePending bool         `json:"price_pending,omitempty"` // added before a price could be resolved
	Quantity     int          `json:"quantity"`
	AddedAt      time.Time    `json:"added_at"`
}

// CartRecord persists one session's entire cart as a single JSON blob.
// Writes always replace the whole payload; there are no partial updates
// at this boundary, so concurrent tabs are last-writer-wins.
type CartRecord struct {
	SessionID string    `gorm:"type:uuid;primaryKey" json:"session_id"`
	Payload   []byte    `gorm:"type:jsonb" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}
