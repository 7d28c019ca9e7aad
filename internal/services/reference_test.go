package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
)

func TestCategoryCreateAssignsUIDAndTimestamps(t *testing.T) {
	svc := NewCategoryService(storage.NewMemory(), "@pos/categories")
	ctx := context.Background()

	created, err := svc.Create(ctx, models.ProductCategory{Name: "Minuman", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.True(t, strings.HasPrefix(created.UID, "CAT"))
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	second, err := svc.Create(ctx, models.ProductCategory{Name: "Makanan"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCategoryUpdateBumpsUpdatedAt(t *testing.T) {
	svc := NewCategoryService(storage.NewMemory(), "@pos/categories")
	ctx := context.Background()

	created, err := svc.Create(ctx, models.ProductCategory{Name: "Minuman"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(ctx, created.ID, map[string]any{"name": "Minuman Dingin"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Minuman Dingin", updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt.UnixNano(), updated.CreatedAt.UnixNano())
}

func TestUpdateCannotOverrideUpdatedAt(t *testing.T) {
	svc := NewSupplierService(storage.NewMemory(), "@pos/suppliers")
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Supplier{Name: "PT Sumber"})
	require.NoError(t, err)

	forged := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, map[string]any{"updated_at": forged})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.UpdatedAt.After(forged))
}

func TestUIDPrefixes(t *testing.T) {
	medium := storage.NewMemory()
	ctx := context.Background()

	size, err := NewSizeService(medium, "@pos/sizes").Create(ctx, models.ProductSize{Name: "L"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(size.UID, "SIZ"))

	supplier, err := NewSupplierService(medium, "@pos/suppliers").Create(ctx, models.Supplier{Name: "PT Sumber"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(supplier.UID, "SUP"))

	card, err := NewPaymentCardService(medium, "@pos/payment-cards").Create(ctx, models.PaymentCard{PaymentMethod: "debit"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(card.UID, "PAY"))

	product, err := NewProductService(medium, "@pos/products").Create(ctx, models.Product{Name: "Kopi"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(product.UID, "PRD"))
}
