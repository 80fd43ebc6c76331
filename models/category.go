package models

import "time"

type Category struct {
	ID          uint         `gorm:"primaryKey"        json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Description string       `gorm:"size:500"          json:"description"`
	Record      RecordStatus `gorm:"column:record_status;size:12;index;default:ACTIVE" json:"record_status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
