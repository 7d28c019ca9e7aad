package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/models"
)

func TestSummarySkipsCancelledSales(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	reports := NewReportService(svc, cat)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 12000, Stock: 100})
	teh := mustCreateProduct(t, cat, models.Product{Name: "Teh", Price: 8000, Stock: 100})

	_, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 3}},
	}, "budi")
	require.NoError(t, err)

	cancelled, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: teh.ID, Quantity: 5}},
	}, "budi")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, cancelled.ID, models.StatusCancelled, models.PaymentCancelled)
	require.NoError(t, err)

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 36000.0, summary.TotalRevenue)

	// Items of the cancelled sale do not count toward top sellers either.
	require.Len(t, summary.TopSelling, 1)
	assert.Equal(t, "Kopi", summary.TopSelling[0].ProductName)
	assert.Equal(t, 3, summary.TopSelling[0].Sold)

	// Recent sales still list both headers.
	assert.Len(t, summary.RecentSales, 2)
}

func TestRangeFiltersByCreatedAt(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	reports := NewReportService(svc, cat)
	ctx := context.Background()

	kopi := mustCreateProduct(t, cat, models.Product{Name: "Kopi", Price: 10000, Stock: 100})
	tx, _, err := svc.Checkout(ctx, CheckoutRequest{
		Items: []CheckoutItem{{ProductID: kopi.ID, Quantity: 1}},
	}, "budi")
	require.NoError(t, err)

	inside, err := reports.Range(ctx, tx.CreatedAt.Add(-time.Hour), tx.CreatedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, inside.TotalCount)
	assert.Equal(t, 10000.0, inside.TotalRevenue)

	outside, err := reports.Range(ctx, tx.CreatedAt.Add(time.Hour), tx.CreatedAt.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, outside.TotalCount)
	assert.Equal(t, 0.0, outside.TotalRevenue)
}

func TestValuationGroupsByCategory(t *testing.T) {
	svc, cat := newCheckoutFixture(t)
	reports := NewReportService(svc, cat)
	ctx := context.Background()

	minuman, err := cat.CreateCategory(ctx, models.ProductCategory{Name: "Minuman"})
	require.NoError(t, err)

	mustCreateProduct(t, cat, models.Product{Name: "Kopi", Modal: 5000, Stock: 10, CategoryID: minuman.ID})
	mustCreateProduct(t, cat, models.Product{Name: "Teh", Modal: 3000, Stock: 20, CategoryID: minuman.ID})
	mustCreateProduct(t, cat, models.Product{Name: "Tisu", Modal: 2000, Stock: 5})

	report := reports.Valuation(ctx)
	require.Len(t, report.Categories, 2)

	// Sorted by category name: Minuman before Uncategorized.
	assert.Equal(t, "Minuman", report.Categories[0].CategoryName)
	assert.Equal(t, 5000.0*10+3000*20, report.Categories[0].Subtotal)
	assert.Equal(t, "Uncategorized", report.Categories[1].CategoryName)
	assert.Equal(t, 10000.0, report.Categories[1].Subtotal)
	assert.Equal(t, report.Categories[0].Subtotal+report.Categories[1].Subtotal, report.GrandTotal)
}
