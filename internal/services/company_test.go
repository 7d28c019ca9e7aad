package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
)

func TestCompanyProfileGetBeforeSaveIsNil(t *testing.T) {
	svc := NewCompanyProfileService(storage.NewMemory(), "@pos/company-profile")

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyProfileSaveCreatesThenMerges(t *testing.T) {
	svc := NewCompanyProfileService(storage.NewMemory(), "@pos/company-profile")
	ctx := context.Background()

	first, err := svc.Save(ctx, models.CompanyProfile{Name: "Warung Kita", Address: "Jl. Mawar 1"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := svc.Save(ctx, models.CompanyProfile{Name: "Warung Kita Baru", Phone: "0812"})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 1, second.ID)
	assert.Equal(t, "Warung Kita Baru", second.Name)
	assert.Equal(t, "0812", second.Phone)
	assert.Equal(t, first.CreatedAt.UnixNano(), second.CreatedAt.UnixNano())

	// Still exactly one record.
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)
}

func TestCompanyProfileUpdateNeverAutoCreates(t *testing.T) {
	svc := NewCompanyProfileService(storage.NewMemory(), "@pos/company-profile")
	ctx := context.Background()

	updated, err := svc.Update(ctx, map[string]any{"name": "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyProfileUpdatePatchesExisting(t *testing.T) {
	svc := NewCompanyProfileService(storage.NewMemory(), "@pos/company-profile")
	ctx := context.Background()

	_, err := svc.Save(ctx, models.CompanyProfile{Name: "Warung Kita", Address: "Jl. Mawar 1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, map[string]any{"phone": "0813"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Warung Kita", updated.Name)
	assert.Equal(t, "0813", updated.Phone)
}
