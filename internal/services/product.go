package services

import (
	"context"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// ProductService manages the product collection. Referential integrity of
// category_id/size_id/supplier_id is the caller's responsibility; the store
// does not enforce it.
type ProductService struct {
	col *store.Collection[models.Product, *models.Product]
}

func NewProductService(medium storage.Medium, key string) *ProductService {
	return &ProductService{col: store.NewCollection[models.Product](medium, key)}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.col.All(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	return s.col.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	p.UID = NewUID("PRD")
	stampCreate(&p.CreatedAt, &p.UpdatedAt)
	return s.col.Add(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id int, patch map[string]any) (*models.Product, error) {
	return s.col.Update(ctx, id, stampUpdate(patch))
}

func (s *ProductService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}
