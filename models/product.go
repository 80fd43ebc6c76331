package models

import "time"

// Product stock is mutated in exactly one place: the sale orchestrator
// decrements it inside the sale transaction. There is no separate
// inventory-adjustment path.
type Product struct {
	ID            uint           `gorm:"primaryKey"         json:"id"`
	Name          string         `gorm:"size:200;not null"  json:"name"`
	Description   string         `gorm:"size:1000"          json:"description"`
	SKU           string         `gorm:"size:50;index"      json:"sku"`
	Brand         string         `gorm:"size:100"           json:"brand"`
	Unit          string         `gorm:"size:50;default:Piece" json:"unit"`
	PriceCents    int64          `gorm:"not null"           json:"price_cents"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	IsActive      bool           `gorm:"default:true"       json:"is_active"`
	CategoryID    uint           `gorm:"index"              json:"category_id"`
	Category      *Category      `json:"category,omitempty"`
	Images        []ProductImage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`
	Record        RecordStatus   `gorm:"column:record_status;size:12;index;default:ACTIVE" json:"record_status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey"    json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	ImageURL  string    `gorm:"size:255;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
