package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/catalog"
	"kasirpos/internal/models"
	"kasirpos/internal/storage"
)

func newCheckoutFixture(t *testing.T) (*TransactionService, *catalog.Catalog) {
	t.Helper()
	medium := storage.NewMemory()
	cat := catalog.New(
		NewProductService(medium, "@pos/products"),
		NewCategoryService(medium, "@pos/categories"),
		NewSizeService(medium, "@pos/sizes"),
		NewSupplierService(medium, "@pos/suppliers"),
	)
	require.NoError(t, cat.Refresh(context.Background()))
	return NewTransactionService(medium, "@pos/transactions", "@pos/transaction-items", cat), cat
}

func mustCreateProduct(t *testing.T, cat *catalog.Catalog, p models.Product) models.Product {
	t.Helper()
	created, err := cat.CreateProduct(context.Background(), p)
	require.NoError(t, err)
	return *created
}

func TestCheckoutComputesTotals(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 10})
	teh := mustCreateProduct(t, cat, models.Product{Name: "Teh", Price: 8000, Stock: 5})

	tx, items, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{
			{ProductID: kopi.ID, Quantity: 2, Discount: 1000},
			{ProductID: teh.ID, Quantity: 1},
		},
		Discount: 2000,
		Tax:      500,
	}, "budi")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 2*12000-1000 + 1*8000 = 31000
	assert.Equal(t, 23000.0, items[0].Subtotal)
	assert.Equal(t, 8000.0, items[1].Subtotal)
	assert.Equal(t, 31000.0, tx.Subtotal)
	assert.Equal(t, 31000.0-2000+500, tx.Total)
	assert.True(t, strings.HasPrefix(tx.TransactionNumber, "TRX"))
	assert.Equal(t, models.StatusCompleted, tx.Status)
	assert.Equal(t, models.PaymentPaid, tx.PaymentStatus)
	assert.Equal(t, "cash", tx.PaymentMethod)
	assert.Equal(t, "budi", tx.CreatedBy)
	for _, item := range items {
		assert.Equal(t, tx.ID, item.TransactionID)
	}
}

func TestCheckoutAdjustsStockAndSold(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 10, Sold: 4})

	_, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 3}},
	}, "budi")
	require.NoError(t, err)

	after := cat.Product(kopi.ID)
	require.NotNil(t, after)
	assert.Equal(t, 7, after.Stock)
	assert.Equal(t, 7, after.Sold)
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 2})

	_, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 3}},
	}, "budi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")

	// Nothing was persisted.
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 2, cat.Product(kopi.ID).Stock)
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	svc, _ := newCheckoutFixture(t)

	_, _, err := svc.Checkout(context.Background(), CheckoutRequest{
		Items: []CheckoutItem{{ProductID: 42, Quantity: 1}},
	}, "budi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckoutSnapshotsPriceAtSaleTime(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 10})

	tx, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 1}},
	}, "budi")
	require.NoError(t, err)

	_, err = cat.UpdateProduct(ctx, kopi.ID, map[string]any{"price": 15000.0})
	require.NoError(t, err)

	items, err := svc.ItemsByTransaction(ctx, tx.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 12000.0, items[0].Price)
	assert.Equal(t, "Kopi", items[0].ProductName)
}

func TestUpdateStatusAndDelete(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 10})
	tx, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 1}},
	}, "budi")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.UpdateStatus(ctx, tx.ID, models.StatusCancelled, models.PaymentCancelled)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, models.PaymentCancelled, updated.PaymentStatus)
	assert.True(t, updated.UpdatedAt.After(tx.UpdatedAt))

	// Deleting the header leaves the items behind; there is no cascade.
	removed, err := svc.Delete(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := svc.ItemsByTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
