package models

import "time"

type Customer struct {
	ID         uint         `gorm:"primaryKey"        json:"id"`
	Name       string       `gorm:"size:100;not null" json:"name"`
	Email      string       `gorm:"size:100"          json:"email"`
	Phone      string       `gorm:"size:20"           json:"phone"`
	Address    string       `gorm:"size:200"          json:"address"`
	City       string       `gorm:"size:50"           json:"city"`
	PostalCode string       `gorm:"size:20"           json:"postal_code"`
	Country    string       `gorm:"size:50"           json:"country"`
	Record     RecordStatus `gorm:"column:record_status;size:12;index;default:ACTIVE" json:"record_status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
