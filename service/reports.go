package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/models"
)

// ===== Dashboard / report DTOs =====

type DashboardSummary struct {
	TotalProducts  int64 `json:"total_products"`
	TotalCustomers int64 `json:"total_customers"`
	TotalSales     int64 `json:"total_sales"`
	RevenueCents   int64 `json:"revenue_cents"`
	LowStockCount  int64 `json:"low_stock_count"`
}

type SalesByDayRow struct {
	Day          time.Time `json:"day"`
	Sales        int64     `json:"sales"`
	RevenueCents int64     `json:"revenue_cents"`
}

type TopProductRow struct {
	ProductID    uint   `json:"product_id"`
	Name         string `json:"name"`
	UnitsSold    int64  `json:"units_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

type LowStockRow struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	StockQuantity int    `json:"stock_quantity"`
}

// LowStockThreshold mirrors the dashboard's "running low" cutoff.
const LowStockThreshold = 10

// ===== Service =====

type ReportService interface {
	DashboardSummary(ctx context.Context) (DashboardSummary, error)
	SalesByDay(ctx context.Context, from, to time.Time) ([]SalesByDayRow, error)
	TopProducts(ctx context.Context, limit int) ([]TopProductRow, error)
	LowStock(ctx context.Context, threshold int) ([]LowStockRow, error)
}

type reportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) ReportService { return &reportService{db: db} }

func (s *reportService) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var out DashboardSummary
	db := s.db.WithContext(ctx)

	if err := db.Table("products").Where("record_status = ?", models.RecordActive).Count(&out.TotalProducts).Error; err != nil {
		return out, err
	}
	if err := db.Table("customers").Where("record_status = ?", models.RecordActive).Count(&out.TotalCustomers).Error; err != nil {
		return out, err
	}
	if err := db.Table("sales").Where("record_status = ? AND status = ?", models.RecordActive, models.SaleCompleted).Count(&out.TotalSales).Error; err != nil {
		return out, err
	}
	if err := db.Table("sales").
		Select("COALESCE(SUM(final_amount_cents), 0)").
		Where("record_status = ? AND status = ?", models.RecordActive, models.SaleCompleted).
		Scan(&out.RevenueCents).Error; err != nil {
		return out, err
	}
	if err := db.Table("products").
		Where("record_status = ? AND stock_quantity < ?", models.RecordActive, LowStockThreshold).
		Count(&out.LowStockCount).Error; err != nil {
		return out, err
	}
	return out, nil
}

func (s *reportService) SalesByDay(ctx context.Context, from, to time.Time) ([]SalesByDayRow, error) {
	var rows []SalesByDayRow
	err := s.db.WithContext(ctx).
		Table("sales").
		Select(`
			date(sale_date)                      AS day,
			COUNT(*)                             AS sales,
			COALESCE(SUM(final_amount_cents), 0) AS revenue_cents
		`).
		Where("record_status = ? AND status = ?", models.RecordActive, models.SaleCompleted).
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Group("date(sale_date)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) TopProducts(ctx context.Context, limit int) ([]TopProductRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 5
	}
	var rows []TopProductRow
	err := s.db.WithContext(ctx).
		Table("sale_items").
		Select(`
			products.id                          AS product_id,
			products.name                        AS name,
			SUM(sale_items.quantity)             AS units_sold,
			SUM(sale_items.total_price_cents)    AS revenue_cents
		`).
		Joins("INNER JOIN products ON products.id = sale_items.product_id").
		Joins("INNER JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.record_status = ? AND sales.status = ?", models.RecordActive, models.SaleCompleted).
		Group("products.id, products.name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (s *reportService) LowStock(ctx context.Context, threshold int) ([]LowStockRow, error) {
	if threshold <= 0 {
		threshold = LowStockThreshold
	}
	var rows []LowStockRow
	err := s.db.WithContext(ctx).
		Table("products").
		Select("id AS product_id, name, sku, stock_quantity").
		Where("record_status = ? AND stock_quantity < ?", models.RecordActive, threshold).
		Order("stock_quantity ASC").
		Scan(&rows).Error
	return rows, err
}
