package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Loanox/urunsatisportali-20241129067/models"
)

// GORM-backed implementations of the stores the sale orchestrator
// consumes. Every method takes the tx handle handed out by the
// TxManager so all reads and writes share one transaction.

type Products struct{}

func (Products) FindActiveForUpdate(tx *gorm.DB, id uint) (*models.Product, error) {
	var p models.Product
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_active = true AND record_status = ?", id, models.RecordActive).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (Products) DecrementStock(tx *gorm.DB, id uint, qty int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// The caller checked stock under a row lock, so this only
		// fires if the row vanished mid-transaction.
		return fmt.Errorf("stock update touched no row for product %d", id)
	}
	return nil
}

type Customers struct{}

func (Customers) Exists(tx *gorm.DB, id uint) (bool, error) {
	var cnt int64
	err := tx.Model(&models.Customer{}).
		Where("id = ? AND record_status = ?", id, models.RecordActive).
		Count(&cnt).Error
	return cnt > 0, err
}

type Sales struct{}

func (Sales) Create(tx *gorm.DB, sale *models.Sale) error {
	if err := tx.Create(sale).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("duplicate sale number %s: %w", sale.SaleNumber, err)
		}
		return err
	}
	return nil
}

func (Sales) FindByID(tx *gorm.DB, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := tx.
		Preload("Customer").
		Preload("User").
		Preload("Items.Product").
		Where("record_status = ?", models.RecordActive).
		First(&sale, id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (Sales) List(tx *gorm.DB) ([]models.Sale, error) {
	var sales []models.Sale
	err := tx.
		Preload("Customer").
		Preload("User").
		Where("record_status = ?", models.RecordActive).
		Order("sale_date DESC").
		Find(&sales).Error
	return sales, err
}

func (Sales) SoftDelete(tx *gorm.DB, id uint) error {
	res := tx.Model(&models.Sale{}).
		Where("id = ? AND record_status = ?", id, models.RecordActive).
		Update("record_status", models.RecordDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
