// Package catalog holds the in-memory product cache shared by every screen
// of the terminal: products plus their reference data, refreshed wholesale
// from the services and patched in place after each successful write.
//
// The cache is never the source of truth; it is disposable and rebuilt from
// storage on Refresh. A failed service call leaves the cache untouched.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"kasirpos/internal/models"
)

// Source is the service surface the catalog needs for one entity kind.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, id int, patch map[string]any) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Catalog struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.ProductCategory
	sizes      []models.ProductSize
	suppliers  []models.Supplier
	lastErr    string

	productSvc  Source[models.Product]
	categorySvc Source[models.ProductCategory]
	sizeSvc     Source[models.ProductSize]
	supplierSvc Source[models.Supplier]
}

func New(
	products Source[models.Product],
	categories Source[models.ProductCategory],
	sizes Source[models.ProductSize],
	suppliers Source[models.Supplier],
) *Catalog {
	return &Catalog{
		productSvc:  products,
		categorySvc: categories,
		sizeSvc:     sizes,
		supplierSvc: suppliers,
	}
}

// Refresh reloads all four collections and replaces the cache wholesale.
// Idempotent; on any load error the previous cache stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.productSvc.List(ctx)
	if err != nil {
		return c.fail(err)
	}
	categories, err := c.categorySvc.List(ctx)
	if err != nil {
		return c.fail(err)
	}
	sizes, err := c.sizeSvc.List(ctx)
	if err != nil {
		return c.fail(err)
	}
	suppliers, err := c.supplierSvc.List(ctx)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.categories = categories
	c.sizes = sizes
	c.suppliers = suppliers
	return nil
}

// fail records the textual error state and passes the error through.
func (c *Catalog) fail(err error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	return err
}

func (c *Catalog) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Catalog) ClearError() {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
}

// --- queries: cache only, no storage reads ---

func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) Product(id int) *models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p
		}
	}
	return nil
}

// SearchProducts matches the query against name and barcode,
// case-insensitive. An empty query returns everything.
func (c *Catalog) SearchProducts(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	c.mu.RLock()
	defer c.mu.RUnlock()
	if q == "" {
		return append([]models.Product(nil), c.products...)
	}
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Barcode), q) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ProductsByCategory(categoryID int) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Product
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// LowStockProducts returns products with stock <= min_stock. The boundary is
// inclusive: a product sitting exactly at its minimum is already low.
func (c *Catalog) LowStockProducts() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Product
	for _, p := range c.products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) FindByBarcode(code string) *models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].Barcode != "" && c.products[i].Barcode == code {
			p := c.products[i]
			return &p
		}
	}
	return nil
}

func (c *Catalog) Categories() []models.ProductCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ProductCategory(nil), c.categories...)
}

func (c *Catalog) Category(id int) *models.ProductCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.categories {
		if c.categories[i].ID == id {
			cat := c.categories[i]
			return &cat
		}
	}
	return nil
}

func (c *Catalog) Sizes() []models.ProductSize {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ProductSize(nil), c.sizes...)
}

func (c *Catalog) Suppliers() []models.Supplier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Supplier(nil), c.suppliers...)
}

// --- product mutations: write through, then patch the cache in place ---

func (c *Catalog) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	created, err := c.productSvc.Create(ctx, p)
	if err != nil {
		return nil, c.fail(err)
	}
	c.mu.Lock()
	c.products = append(c.products, *created)
	c.mu.Unlock()
	return created, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, id int, patch map[string]any) (*models.Product, error) {
	updated, err := c.productSvc.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail(err)
	}
	if updated == nil {
		return nil, nil
	}
	c.mu.Lock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id int) (bool, error) {
	removed, err := c.productSvc.Delete(ctx, id)
	if err != nil {
		return false, c.fail(err)
	}
	if !removed {
		return false, nil
	}
	c.mu.Lock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.mu.Unlock()
	return true, nil
}

// UpdateStock applies a delta to a product's stock. Stock can never go
// negative.
func (c *Catalog) UpdateStock(ctx context.Context, id, delta int) (*models.Product, error) {
	current := c.Product(id)
	if current == nil {
		return nil, nil
	}
	next := current.Stock + delta
	if next < 0 {
		return nil, c.fail(errors.Errorf("stock for %q cannot go below zero", current.Name))
	}
	return c.UpdateProduct(ctx, id, map[string]any{"stock": next})
}

// UpdateSold applies a delta to a product's lifetime sold counter.
func (c *Catalog) UpdateSold(ctx context.Context, id, delta int) (*models.Product, error) {
	current := c.Product(id)
	if current == nil {
		return nil, nil
	}
	return c.UpdateProduct(ctx, id, map[string]any{"sold": current.Sold + delta})
}

// --- reference data mutations ---

func (c *Catalog) CreateCategory(ctx context.Context, cat models.ProductCategory) (*models.ProductCategory, error) {
	created, err := c.categorySvc.Create(ctx, cat)
	if err != nil {
		return nil, c.fail(err)
	}
	c.mu.Lock()
	c.categories = append(c.categories, *created)
	c.mu.Unlock()
	return created, nil
}

func (c *Catalog) UpdateCategory(ctx context.Context, id int, patch map[string]any) (*models.ProductCategory, error) {
	updated, err := c.categorySvc.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail(err)
	}
	if updated == nil {
		return nil, nil
	}
	c.mu.Lock()
	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// DeleteCategory removes the category only. Products referencing it keep
// their dangling category_id; there is no cascade.
func (c *Catalog) DeleteCategory(ctx context.Context, id int) (bool, error) {
	removed, err := c.categorySvc.Delete(ctx, id)
	if err != nil {
		return false, c.fail(err)
	}
	if !removed {
		return false, nil
	}
	c.mu.Lock()
	kept := c.categories[:0]
	for _, cat := range c.categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	c.categories = kept
	c.mu.Unlock()
	return true, nil
}

func (c *Catalog) CreateSize(ctx context.Context, sz models.ProductSize) (*models.ProductSize, error) {
	created, err := c.sizeSvc.Create(ctx, sz)
	if err != nil {
		return nil, c.fail(err)
	}
	c.mu.Lock()
	c.sizes = append(c.sizes, *created)
	c.mu.Unlock()
	return created, nil
}

func (c *Catalog) UpdateSize(ctx context.Context, id int, patch map[string]any) (*models.ProductSize, error) {
	updated, err := c.sizeSvc.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail(err)
	}
	if updated == nil {
		return nil, nil
	}
	c.mu.Lock()
	for i := range c.sizes {
		if c.sizes[i].ID == id {
			c.sizes[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Catalog) DeleteSize(ctx context.Context, id int) (bool, error) {
	removed, err := c.sizeSvc.Delete(ctx, id)
	if err != nil {
		return false, c.fail(err)
	}
	if !removed {
		return false, nil
	}
	c.mu.Lock()
	kept := c.sizes[:0]
	for _, sz := range c.sizes {
		if sz.ID != id {
			kept = append(kept, sz)
		}
	}
	c.sizes = kept
	c.mu.Unlock()
	return true, nil
}

func (c *Catalog) CreateSupplier(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	created, err := c.supplierSvc.Create(ctx, sup)
	if err != nil {
		return nil, c.fail(err)
	}
	c.mu.Lock()
	c.suppliers = append(c.suppliers, *created)
	c.mu.Unlock()
	return created, nil
}

func (c *Catalog) UpdateSupplier(ctx context.Context, id int, patch map[string]any) (*models.Supplier, error) {
	updated, err := c.supplierSvc.Update(ctx, id, patch)
	if err != nil {
		return nil, c.fail(err)
	}
	if updated == nil {
		return nil, nil
	}
	c.mu.Lock()
	for i := range c.suppliers {
		if c.suppliers[i].ID == id {
			c.suppliers[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Catalog) DeleteSupplier(ctx context.Context, id int) (bool, error) {
	removed, err := c.supplierSvc.Delete(ctx, id)
	if err != nil {
		return false, c.fail(err)
	}
	if !removed {
		return false, nil
	}
	c.mu.Lock()
	kept := c.suppliers[:0]
	for _, sup := range c.suppliers {
		if sup.ID != id {
			kept = append(kept, sup)
		}
	}
	c.suppliers = kept
	c.mu.Unlock()
	return true, nil
}
