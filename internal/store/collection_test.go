package store

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
)

func newTestCollection(t *testing.T) (*Collection[models.ProductCategory, *models.ProductCategory], *storage.MemoryMedium) {
	t.Helper()
	medium := storage.NewMemory()
	return NewCollection[models.ProductCategory](medium, "@pos/categories"), medium
}

func TestAllOnAbsentKeyIsEmpty(t *testing.T) {
	col, _ := newTestCollection(t)

	all, err := col.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	col, _ := newTestCollection(t)
	ctx := context.Background()

	first, err := col.Add(ctx, models.ProductCategory{Name: "Minuman"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := col.Add(ctx, models.ProductCategory{Name: "Makanan"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	got, err := col.Get(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Makanan", got.Name)
}

func TestAddReusesHighestIDAfterDelete(t *testing.T) {
	col, _ := newTestCollection(t)
	ctx := context.Background()

	_, err := col.Add(ctx, models.ProductCategory{Name: "Minuman"})
	require.NoError(t, err)
	second, err := col.Add(ctx, models.ProductCategory{Name: "Makanan"})
	require.NoError(t, err)

	removed, err := col.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	third, err := col.Add(ctx, models.ProductCategory{Name: "Snack"})
	require.NoError(t, err)
	assert.Equal(t, 2, third.ID)
}

func TestGetMissingReturnsNil(t *testing.T) {
	col, _ := newTestCollection(t)

	got, err := col.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMergesPatchAndKeepsID(t *testing.T) {
	col, _ := newTestCollection(t)
	ctx := context.Background()

	created, err := col.Add(ctx, models.ProductCategory{Name: "Minuman", IsActive: true})
	require.NoError(t, err)

	updated, err := col.Update(ctx, created.ID, map[string]any{
		"name": "Minuman Dingin",
		"id":   999,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Minuman Dingin", updated.Name)
	assert.True(t, updated.IsActive)
}

func TestUpdateMissingReturnsNilNil(t *testing.T) {
	col, _ := newTestCollection(t)

	updated, err := col.Update(context.Background(), 42, map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteMissingReturnsFalseNil(t *testing.T) {
	col, _ := newTestCollection(t)

	removed, err := col.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	col, _ := newTestCollection(t)
	ctx := context.Background()

	first, err := col.Add(ctx, models.ProductCategory{Name: "Minuman"})
	require.NoError(t, err)
	second, err := col.Add(ctx, models.ProductCategory{Name: "Makanan"})
	require.NoError(t, err)

	removed, err := col.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := col.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestCorruptDataIsParseError(t *testing.T) {
	col, medium := newTestCollection(t)
	ctx := context.Background()

	require.NoError(t, medium.SetItem(ctx, col.Key(), []byte("{not json")))

	_, err := col.All(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = col.Get(ctx, 1)
	assert.True(t, errors.Is(err, ErrParse))

	_, err = col.Add(ctx, models.ProductCategory{Name: "x"})
	assert.True(t, errors.Is(err, ErrParse))
}

func TestStorageErrorsPropagate(t *testing.T) {
	col, medium := newTestCollection(t)
	ctx := context.Background()

	medium.FailReads = true
	_, err := col.All(ctx)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))

	medium.FailReads = false
	medium.FailWrites = true
	_, err = col.Add(ctx, models.ProductCategory{Name: "x"})
	assert.True(t, errors.Is(err, storage.ErrUnavailable))
}
