package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a flat-priced shop article (fertilizer, pots, vouchers, books).
// Unlike cultivars, products carry their own fixed price and no age dimension.
type Product struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
