package models

import "time"

// PriceMatrixEntry is one cell of the authoritative price matrix,
// keyed uniquely by (price group, age, container size).
type PriceMatrixEntry struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PriceGroup string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_matrix_key" json:"price_group"`
	AgeYears   int       `gorm:"not null;uniqueIndex:idx_matrix_key" json:"age_years"`
	Size       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_matrix_key" json:"size"` // container label, e.g. "10L"
	Price      float64   `gorm:"not null" json:"price"`
	Available  bool      `gorm:"default:true" json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
