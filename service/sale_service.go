package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/notify"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

// SaleService turns a draft sale plus (productID, quantity) pairs into
// a committed Sale with items, decrementing stock atomically.
type SaleService interface {
	CreateSale(ctx context.Context, draft models.Sale, productIDs []uint, quantities []int) (*models.Sale, error)
	GetSale(ctx context.Context, id uint) (*models.Sale, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error
}

type saleService struct {
	products  ProductStore
	customers CustomerStore
	sales     SaleStore
	tx        TxManager
	notifier  Notifier
}

func NewSaleService(products ProductStore, customers CustomerStore, sales SaleStore, tx TxManager, notifier Notifier) SaleService {
	return &saleService{
		products:  products,
		customers: customers,
		sales:     sales,
		tx:        tx,
		notifier:  notifier,
	}
}

// CreateSale runs the whole read-check-decrement-insert sequence in
// one transaction. Any validation or persistence failure rolls the
// transaction back in full: stock is never left decremented without a
// committed sale. The broadcast happens strictly after commit and its
// outcome never reaches the caller.
func (s *saleService) CreateSale(ctx context.Context, draft models.Sale, productIDs []uint, quantities []int) (*models.Sale, error) {
	if len(productIDs) == 0 || len(productIDs) != len(quantities) {
		return nil, fmt.Errorf("%w: product and quantity lists must be non-empty and the same length", ErrInvalidRequest)
	}

	var created *models.Sale
	err := s.tx.Do(ctx, func(tx *gorm.DB) error {
		if draft.CustomerID != nil && *draft.CustomerID > 0 {
			ok, err := s.customers.Exists(tx, *draft.CustomerID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: customer %d does not exist", ErrCustomerNotFound, *draft.CustomerID)
			}
		} else {
			// Anonymous / walk-in sale.
			draft.CustomerID = nil
		}

		var subtotal int64
		items := make([]models.SaleItem, 0, len(productIDs))
		for i, productID := range productIDs {
			qty := quantities[i]
			if qty <= 0 {
				// Non-positive quantities are skipped, not rejected.
				continue
			}

			p, err := s.products.FindActiveForUpdate(tx, productID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d not found or not active", ErrProductUnavailable, productID)
				}
				return err
			}
			if p.StockQuantity < qty {
				return fmt.Errorf("%w: not enough stock for %s (available: %d, requested: %d)",
					ErrInsufficientStock, p.Name, p.StockQuantity, qty)
			}
			if err := s.products.DecrementStock(tx, p.ID, qty); err != nil {
				return err
			}

			line := p.PriceCents * int64(qty)
			subtotal += line
			items = append(items, models.SaleItem{
				ProductID:       p.ID,
				Quantity:        qty,
				UnitPriceCents:  p.PriceCents,
				TotalPriceCents: line,
			})
		}

		if len(items) == 0 {
			return fmt.Errorf("%w: no sellable items in the request", ErrEmptySale)
		}

		now := time.Now()
		amounts := ComputeAmounts(subtotal, draft.Tax, draft.Discount)

		sale := draft
		sale.SaleNumber = utils.GenSaleNumber(now)
		sale.SaleDate = now
		sale.Status = models.SaleCompleted
		sale.TotalAmountCents = amounts.SubtotalCents
		sale.FinalAmountCents = amounts.FinalCents
		sale.Record = models.RecordActive
		sale.Items = items

		if err := s.sales.Create(tx, &sale); err != nil {
			return err
		}
		created = &sale
		return nil
	})
	if err != nil {
		if IsSaleError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.notifier.PublishSale(ctx, notify.SaleEvent{
		SaleID:           created.ID,
		SaleNumber:       created.SaleNumber,
		FinalAmountCents: created.FinalAmountCents,
		Message:          fmt.Sprintf("New sale: %s (%s)", created.SaleNumber, utils.FormatCents(created.FinalAmountCents)),
		OccurredAt:       time.Now(),
	})
	return created, nil
}

func (s *saleService) GetSale(ctx context.Context, id uint) (*models.Sale, error) {
	var sale *models.Sale
	err := s.tx.View(ctx, func(tx *gorm.DB) error {
		var err error
		sale, err = s.sales.FindByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.tx.View(ctx, func(tx *gorm.DB) error {
		var err error
		sales, err = s.sales.List(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// DeleteSale soft-deletes a whole sale. Stock is not restored; a
// committed sale's decrement is permanent.
func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	return s.tx.Do(ctx, func(tx *gorm.DB) error {
		return s.sales.SoftDelete(tx, id)
	})
}
