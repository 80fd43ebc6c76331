package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/notify"
)

// fakeDeps backs all the orchestrator's collaborators with in-memory
// maps. Do serializes units of work with a mutex and restores a
// snapshot when fn fails, which mirrors the rollback a real
// transaction gives us.
type fakeDeps struct {
	mu        sync.Mutex
	products  map[uint]*models.Product
	customers map[uint]bool
	sales     []models.Sale
	nextID    uint
	createErr error

	pubMu     sync.Mutex
	published []notify.SaleEvent
}

func newFakeDeps() *fakeDeps {
	return &fakeDeps{
		products:  map[uint]*models.Product{},
		customers: map[uint]bool{},
		nextID:    1,
	}
}

func (f *fakeDeps) addProduct(id uint, name string, priceCents int64, stock int) {
	f.products[id] = &models.Product{
		ID:            id,
		Name:          name,
		PriceCents:    priceCents,
		StockQuantity: stock,
		IsActive:      true,
		Record:        models.RecordActive,
	}
}

func (f *fakeDeps) stockOf(id uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id].StockQuantity
}

func (f *fakeDeps) FindActiveForUpdate(_ *gorm.DB, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok || !p.IsActive || p.Record != models.RecordActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeDeps) DecrementStock(_ *gorm.DB, id uint, qty int) error {
	p, ok := f.products[id]
	if !ok || p.StockQuantity < qty {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity -= qty
	return nil
}

func (f *fakeDeps) Exists(_ *gorm.DB, id uint) (bool, error) {
	return f.customers[id], nil
}

func (f *fakeDeps) Create(_ *gorm.DB, sale *models.Sale) error {
	if f.createErr != nil {
		return f.createErr
	}
	sale.ID = f.nextID
	f.nextID++
	f.sales = append(f.sales, *sale)
	return nil
}

func (f *fakeDeps) FindByID(_ *gorm.DB, id uint) (*models.Sale, error) {
	for i := range f.sales {
		if f.sales[i].ID == id && f.sales[i].Record == models.RecordActive {
			cp := f.sales[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeps) List(_ *gorm.DB) ([]models.Sale, error) {
	var out []models.Sale
	for _, s := range f.sales {
		if s.Record == models.RecordActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeDeps) SoftDelete(_ *gorm.DB, id uint) error {
	for i := range f.sales {
		if f.sales[i].ID == id && f.sales[i].Record == models.RecordActive {
			f.sales[i].Record = models.RecordDeleted
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDeps) Do(_ context.Context, fn func(tx *gorm.DB) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapProducts := make(map[uint]models.Product, len(f.products))
	for id, p := range f.products {
		snapProducts[id] = *p
	}
	snapSales := append([]models.Sale(nil), f.sales...)
	snapNext := f.nextID

	if err := fn(nil); err != nil {
		for id := range f.products {
			cp := snapProducts[id]
			f.products[id] = &cp
		}
		f.sales = snapSales
		f.nextID = snapNext
		return err
	}
	return nil
}

func (f *fakeDeps) View(_ context.Context, fn func(tx *gorm.DB) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(nil)
}

func (f *fakeDeps) PublishSale(_ context.Context, ev notify.SaleEvent) {
	f.pubMu.Lock()
	defer f.pubMu.Unlock()
	f.published = append(f.published, ev)
}

func (f *fakeDeps) publishedEvents() []notify.SaleEvent {
	f.pubMu.Lock()
	defer f.pubMu.Unlock()
	return append([]notify.SaleEvent(nil), f.published...)
}

func newTestService(f *fakeDeps) SaleService {
	return NewSaleService(f, f, f, f, f)
}

func TestCreateSaleHappyPath(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	sale, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{3})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), sale.TotalAmountCents)
	assert.Equal(t, int64(30000), sale.FinalAmountCents)
	assert.Equal(t, models.SaleCompleted, sale.Status)
	assert.Equal(t, models.RecordActive, sale.Record)
	assert.True(t, strings.HasPrefix(sale.SaleNumber, "SALE-"))
	assert.False(t, sale.SaleDate.IsZero())

	require.Len(t, sale.Items, 1)
	assert.Equal(t, uint(1), sale.Items[0].ProductID)
	assert.Equal(t, 3, sale.Items[0].Quantity)
	assert.Equal(t, int64(10000), sale.Items[0].UnitPriceCents)
	assert.Equal(t, int64(30000), sale.Items[0].TotalPriceCents)

	assert.Equal(t, 7, f.stockOf(1))

	events := f.publishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, sale.ID, events[0].SaleID)
	assert.Equal(t, sale.SaleNumber, events[0].SaleNumber)
	assert.Equal(t, sale.FinalAmountCents, events[0].FinalAmountCents)
	assert.Contains(t, events[0].Message, sale.SaleNumber)
}

func TestCreateSaleAppliesTaxAndDiscount(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	sale, err := svc.CreateSale(context.Background(),
		models.Sale{Tax: 10, Discount: 5}, []uint{1}, []int{3})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), sale.TotalAmountCents)
	// 30000 + 3000 tax - 1500 discount
	assert.Equal(t, int64(31500), sale.FinalAmountCents)
}

func TestCreateSalePriceCapturedAtSaleTime(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	sale, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{1})
	require.NoError(t, err)

	f.mu.Lock()
	f.products[1].PriceCents = 99999
	f.mu.Unlock()

	got, err := svc.GetSale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Items[0].UnitPriceCents)
}

func TestCreateSaleRejectsMismatchedInput(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	_, err := svc.CreateSale(context.Background(), models.Sale{}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.CreateSale(context.Background(), models.Sale{}, []uint{1, 2}, []int{1})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, 10, f.stockOf(1))
	assert.Empty(t, f.publishedEvents())
}

func TestCreateSaleSkipsNonPositiveQuantities(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	f.addProduct(2, "Mouse", 2500, 10)
	svc := newTestService(f)

	sale, err := svc.CreateSale(context.Background(), models.Sale{},
		[]uint{1, 2}, []int{2, 0})
	require.NoError(t, err)

	require.Len(t, sale.Items, 1)
	assert.Equal(t, uint(1), sale.Items[0].ProductID)
	assert.Equal(t, 10, f.stockOf(2))
}

func TestCreateSaleAllQuantitiesNonPositive(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	_, err := svc.CreateSale(context.Background(), models.Sale{},
		[]uint{1, 1}, []int{0, -3})
	assert.ErrorIs(t, err, ErrEmptySale)
	assert.Equal(t, 10, f.stockOf(1))
	assert.Empty(t, f.publishedEvents())
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 2)
	svc := newTestService(f)

	_, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{5})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Laptop")
	assert.Contains(t, err.Error(), "available: 2")

	assert.Equal(t, 2, f.stockOf(1))
	assert.Empty(t, f.publishedEvents())
}

func TestCreateSaleRollsBackEarlierLines(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	f.addProduct(2, "Mouse", 2500, 1)
	svc := newTestService(f)

	_, err := svc.CreateSale(context.Background(), models.Sale{},
		[]uint{1, 2}, []int{3, 5})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// The first line's decrement must not survive the rollback.
	assert.Equal(t, 10, f.stockOf(1))
	assert.Equal(t, 1, f.stockOf(2))

	sales, listErr := svc.ListSales(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, sales)
}

func TestCreateSaleProductUnavailable(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	f.addProduct(2, "Mouse", 2500, 10)
	f.addProduct(3, "Keyboard", 5000, 10)
	f.products[2].IsActive = false
	f.products[3].Record = models.RecordDeleted
	svc := newTestService(f)

	for _, id := range []uint{999, 2, 3} {
		_, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{id}, []int{1})
		assert.ErrorIs(t, err, ErrProductUnavailable, "product %d", id)
	}
	assert.Empty(t, f.publishedEvents())
}

func TestCreateSaleCustomerNotFound(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	customerID := uint(9999)
	_, err := svc.CreateSale(context.Background(),
		models.Sale{CustomerID: &customerID}, []uint{1}, []int{1})
	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, 10, f.stockOf(1))
}

func TestCreateSaleWithKnownCustomer(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	f.customers[42] = true
	svc := newTestService(f)

	customerID := uint(42)
	sale, err := svc.CreateSale(context.Background(),
		models.Sale{CustomerID: &customerID}, []uint{1}, []int{1})
	require.NoError(t, err)
	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, uint(42), *sale.CustomerID)
}

func TestCreateSaleAnonymousCustomer(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	zero := uint(0)
	sale, err := svc.CreateSale(context.Background(),
		models.Sale{CustomerID: &zero}, []uint{1}, []int{1})
	require.NoError(t, err)
	assert.Nil(t, sale.CustomerID)
}

func TestCreateSalePersistenceFailure(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	f.createErr = errors.New("connection reset")
	svc := newTestService(f)

	_, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{3})
	require.ErrorIs(t, err, ErrPersistence)
	assert.False(t, IsSaleError(err))

	assert.Equal(t, 10, f.stockOf(1))
	assert.Empty(t, f.publishedEvents())
}

func TestCreateSaleConcurrentLastUnit(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 1)
	svc := newTestService(f)

	const buyers = 8
	results := make(chan error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{1})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, outOfStock int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInsufficientStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, buyers-1, outOfStock)
	assert.Equal(t, 0, f.stockOf(1))

	sales, err := svc.ListSales(context.Background())
	require.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Len(t, f.publishedEvents(), 1)
}

func TestDeleteSaleSoftDeletesWithoutRestock(t *testing.T) {
	f := newFakeDeps()
	f.addProduct(1, "Laptop", 10000, 10)
	svc := newTestService(f)

	sale, err := svc.CreateSale(context.Background(), models.Sale{}, []uint{1}, []int{4})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID))

	_, err = svc.GetSale(context.Background(), sale.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A committed decrement is permanent.
	assert.Equal(t, 6, f.stockOf(1))

	err = svc.DeleteSale(context.Background(), sale.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
