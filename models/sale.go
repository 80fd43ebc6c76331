package models

import "time"

type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SaleCompleted SaleStatus = "COMPLETED"
	SaleCancelled SaleStatus = "CANCELLED"
)

// Sale is a committed purchase. Amounts are int64 cents; Tax and
// Discount are percentages in [0,100] applied to TotalAmountCents.
// FinalAmountCents is always derived from the items plus those
// percentages, never set by a caller. The item list is immutable after
// commit; the only later mutation is soft-deleting the whole sale.
type Sale struct {
	ID               uint         `gorm:"primaryKey"                json:"id"`
	SaleNumber       string       `gorm:"uniqueIndex;size:50;not null" json:"sale_number"`
	CustomerID       *uint        `gorm:"index"                     json:"customer_id"`
	Customer         *Customer    `json:"customer,omitempty"`
	UserID           *uint        `gorm:"index"                     json:"user_id"`
	User             *User        `json:"user,omitempty"`
	TotalAmountCents int64        `gorm:"not null"                  json:"total_amount_cents"`
	Discount         float64      `gorm:"not null;default:0"        json:"discount"`
	Tax              float64      `gorm:"not null;default:0"        json:"tax"`
	FinalAmountCents int64        `gorm:"not null"                  json:"final_amount_cents"`
	Status           SaleStatus   `gorm:"size:20;index;default:PENDING" json:"status"`
	Notes            string       `gorm:"size:500"                  json:"notes"`
	SaleDate         time.Time    `gorm:"index"                     json:"sale_date"`
	Items            []SaleItem   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Record           RecordStatus `gorm:"column:record_status;size:12;index;default:ACTIVE" json:"record_status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// SaleItem captures the product's unit price at the moment of sale,
// not the live catalog price. Items are only ever created as part of a
// Sale's construction.
type SaleItem struct {
	ID              uint      `gorm:"primaryKey"     json:"id"`
	SaleID          uint      `gorm:"index;not null" json:"sale_id"`
	ProductID       uint      `gorm:"not null"       json:"product_id"`
	Product         *Product  `json:"product,omitempty"`
	Quantity        int       `gorm:"not null"       json:"quantity"`
	UnitPriceCents  int64     `gorm:"not null"       json:"unit_price_cents"`
	DiscountCents   int64     `gorm:"not null;default:0" json:"discount_cents"`
	TotalPriceCents int64     `gorm:"not null"       json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}
