package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxManager scopes a unit of work to one database transaction.
type TxManager struct {
	DB *gorm.DB
}

func (m TxManager) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.DB.WithContext(ctx).Transaction(fn)
}

func (m TxManager) View(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(m.DB.WithContext(ctx))
}
