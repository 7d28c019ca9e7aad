package services

import (
	"context"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// CategoryService manages product categories under one storage key.
type CategoryService struct {
	col *store.Collection[models.ProductCategory, *models.ProductCategory]
}

func NewCategoryService(medium storage.Medium, key string) *CategoryService {
	return &CategoryService{col: store.NewCollection[models.ProductCategory](medium, key)}
}

func (s *CategoryService) List(ctx context.Context) ([]models.ProductCategory, error) {
	return s.col.All(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.ProductCategory, error) {
	return s.col.Get(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, c models.ProductCategory) (*models.ProductCategory, error) {
	c.UID = NewUID("CAT")
	stampCreate(&c.CreatedAt, &c.UpdatedAt)
	return s.col.Add(ctx, c)
}

func (s *CategoryService) Update(ctx context.Context, id int, patch map[string]any) (*models.ProductCategory, error) {
	return s.col.Update(ctx, id, stampUpdate(patch))
}

func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}

// SizeService manages product sizes.
type SizeService struct {
	col *store.Collection[models.ProductSize, *models.ProductSize]
}

func NewSizeService(medium storage.Medium, key string) *SizeService {
	return &SizeService{col: store.NewCollection[models.ProductSize](medium, key)}
}

func (s *SizeService) List(ctx context.Context) ([]models.ProductSize, error) {
	return s.col.All(ctx)
}

func (s *SizeService) Get(ctx context.Context, id int) (*models.ProductSize, error) {
	return s.col.Get(ctx, id)
}

func (s *SizeService) Create(ctx context.Context, sz models.ProductSize) (*models.ProductSize, error) {
	sz.UID = NewUID("SIZ")
	stampCreate(&sz.CreatedAt, &sz.UpdatedAt)
	return s.col.Add(ctx, sz)
}

func (s *SizeService) Update(ctx context.Context, id int, patch map[string]any) (*models.ProductSize, error) {
	return s.col.Update(ctx, id, stampUpdate(patch))
}

func (s *SizeService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}

// SupplierService manages suppliers.
type SupplierService struct {
	col *store.Collection[models.Supplier, *models.Supplier]
}

func NewSupplierService(medium storage.Medium, key string) *SupplierService {
	return &SupplierService{col: store.NewCollection[models.Supplier](medium, key)}
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	return s.col.All(ctx)
}

func (s *SupplierService) Get(ctx context.Context, id int) (*models.Supplier, error) {
	return s.col.Get(ctx, id)
}

func (s *SupplierService) Create(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	sup.UID = NewUID("SUP")
	stampCreate(&sup.CreatedAt, &sup.UpdatedAt)
	return s.col.Add(ctx, sup)
}

func (s *SupplierService) Update(ctx context.Context, id int, patch map[string]any) (*models.Supplier, error) {
	return s.col.Update(ctx, id, stampUpdate(patch))
}

func (s *SupplierService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}

// PaymentCardService manages the configured payment cards/methods.
type PaymentCardService struct {
	col *store.Collection[models.PaymentCard, *models.PaymentCard]
}

func NewPaymentCardService(medium storage.Medium, key string) *PaymentCardService {
	return &PaymentCardService{col: store.NewCollection[models.PaymentCard](medium, key)}
}

func (s *PaymentCardService) List(ctx context.Context) ([]models.PaymentCard, error) {
	return s.col.All(ctx)
}

func (s *PaymentCardService) Get(ctx context.Context, id int) (*models.PaymentCard, error) {
	return s.col.Get(ctx, id)
}

func (s *PaymentCardService) Create(ctx context.Context, card models.PaymentCard) (*models.PaymentCard, error) {
	card.UID = NewUID("PAY")
	stampCreate(&card.CreatedAt, &card.UpdatedAt)
	return s.col.Add(ctx, card)
}

func (s *PaymentCardService) Update(ctx context.Context, id int, patch map[string]any) (*models.PaymentCard, error) {
	return s.col.Update(ctx, id, stampUpdate(patch))
}

func (s *PaymentCardService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}
