package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/models"
	"kasirpos/internal/settings"
	"kasirpos/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryMedium) {
	t.Helper()
	medium := storage.NewMemory()
	set := settings.NewService(medium, "@pos/settings")
	return NewService(medium, "@pos/receipt-template", set), medium
}

func sampleData() Data {
	return Data{
		Company: models.CompanyProfile{Name: "Warung Kita", Address: "Jl. Mawar 1"},
		Tx: models.Transaction{
			TransactionNumber: "TRX1735689600000",
			Subtotal:          31000,
			Discount:          2000,
			Tax:               500,
			Total:             29500,
			PaymentMethod:     "cash",
			CreatedBy:         "budi",
			CreatedAt:         time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC),
		},
		Items: []models.TransactionItem{
			{ProductName: "Kopi", Quantity: 2, Price: 12000, Subtotal: 23000},
			{ProductName: "Teh", Quantity: 1, Price: 8000, Subtotal: 8000},
		},
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Render(context.Background(), sampleData())
	require.NoError(t, err)

	assert.Contains(t, out, "Warung Kita")
	assert.Contains(t, out, "No : TRX1735689600000")
	assert.Contains(t, out, "Kasir: budi")
	assert.Contains(t, out, "Kopi")
	assert.Contains(t, out, "2 x Rp 12.000 = Rp 23.000")
	assert.Contains(t, out, "TOTAL    : Rp 29.500")
	assert.Contains(t, out, "Terima kasih!")
	assert.Contains(t, out, "07/03/2025 14:05")
}

func TestSaveTemplateRejectsBrokenTemplate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.SaveTemplate(ctx, "{{.Tx.Total")
	require.Error(t, err)

	// The broken template was not persisted; rendering still works.
	text, err := svc.Template(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, text)
}

func TestSavedTemplateWinsOverDefault(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	custom := "Struk {{.Tx.TransactionNumber}} total {{idr .Tx.Total}}\n"
	require.NoError(t, svc.SaveTemplate(ctx, custom))

	out, err := svc.Render(ctx, sampleData())
	require.NoError(t, err)
	assert.Equal(t, "Struk TRX1735689600000 total Rp 29.500\n", out)
}

func TestRenderPropagatesStorageErrors(t *testing.T) {
	svc, medium := newTestService(t)
	medium.FailReads = true

	_, err := svc.Render(context.Background(), sampleData())
	assert.Error(t, err)
}
