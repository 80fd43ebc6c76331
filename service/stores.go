package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/notify"
)

// Collaborators consumed by the sale orchestrator. The gorm-backed
// implementations live in the repositories package; tests substitute
// in-memory fakes. The tx handle is whatever TxManager passed to the
// unit of work.

type ProductStore interface {
	// FindActiveForUpdate loads a sellable product (active, not soft
	// deleted) and holds a row lock on it until the surrounding
	// transaction ends. Returns gorm.ErrRecordNotFound when the
	// product is missing, inactive or deleted.
	FindActiveForUpdate(tx *gorm.DB, id uint) (*models.Product, error)

	// DecrementStock atomically subtracts qty from the product's
	// stock, guarded so the column never goes negative.
	DecrementStock(tx *gorm.DB, id uint, qty int) error
}

type CustomerStore interface {
	Exists(tx *gorm.DB, id uint) (bool, error)
}

type SaleStore interface {
	Create(tx *gorm.DB, sale *models.Sale) error
	FindByID(tx *gorm.DB, id uint) (*models.Sale, error)
	List(tx *gorm.DB) ([]models.Sale, error)
	SoftDelete(tx *gorm.DB, id uint) error
}

// TxManager is the unit-of-work boundary. Do runs fn in one ACID
// transaction: fn returning an error rolls everything back. View runs
// fn outside a transaction for reads.
type TxManager interface {
	Do(ctx context.Context, fn func(tx *gorm.DB) error) error
	View(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Notifier is the fire-and-forget broadcast sink. Implementations
// swallow and log their own failures; a publish must never fail an
// already-committed sale.
type Notifier interface {
	PublishSale(ctx context.Context, ev notify.SaleEvent)
}
