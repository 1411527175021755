package models

import (
	"time"

	"gorm.io/gorm"
)

// Cultivar is a single camellia variety in the catalog.
// PriceGroup is empty for cultivars that are catalogued but not for sale.
type Cultivar struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"` // e.g. "Black Lace"
	Species     string         `json:"species"`              // e.g. "Camellia japonica"
	Breeder     string         `json:"breeder"`
	FlowerColor string         `json:"flower_color"`
	FlowerForm  string         `json:"flower_form"`
	Description string         `json:"description"`
	PriceGroup  string         `gorm:"type:varchar(10);index" json:"price_group"` // common | medium | rare
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
