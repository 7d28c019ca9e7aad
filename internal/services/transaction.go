package services

import (
	"context"

	"github.com/pkg/errors"

	"kasirpos/internal/catalog"
	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// CheckoutItem is one cart line as sent by the terminal.
type CheckoutItem struct {
	ProductID int     `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Discount  float64 `json:"discount"`
}

// CheckoutRequest is the cart the terminal submits for a sale.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items" binding:"required,min=1"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	PaymentMethod string         `json:"payment_method"`
	Discount      float64        `json:"discount"`
	Tax           float64        `json:"tax"`
}

// TransactionService manages sale headers and their items. Checkout reads
// and writes product stock through the catalog so the cache stays aligned
// with storage.
type TransactionService struct {
	col     *store.Collection[models.Transaction, *models.Transaction]
	items   *store.Collection[models.TransactionItem, *models.TransactionItem]
	catalog *catalog.Catalog
}

func NewTransactionService(medium storage.Medium, key, itemsKey string, cat *catalog.Catalog) *TransactionService {
	return &TransactionService{
		col:     store.NewCollection[models.Transaction](medium, key),
		items:   store.NewCollection[models.TransactionItem](medium, itemsKey),
		catalog: cat,
	}
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.col.All(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id int) (*models.Transaction, error) {
	return s.col.Get(ctx, id)
}

// ItemsByTransaction returns the cart lines belonging to one sale.
func (s *TransactionService) ItemsByTransaction(ctx context.Context, transactionID int) ([]models.TransactionItem, error) {
	all, err := s.items.All(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.TransactionItem{}
	for _, item := range all {
		if item.TransactionID == transactionID {
			out = append(out, item)
		}
	}
	return out, nil
}

// AllItems returns every cart line across all sales, for reporting.
func (s *TransactionService) AllItems(ctx context.Context) ([]models.TransactionItem, error) {
	return s.items.All(ctx)
}

func (s *TransactionService) UpdateStatus(ctx context.Context, id int, status, paymentStatus string) (*models.Transaction, error) {
	patch := map[string]any{}
	if status != "" {
		patch["status"] = status
	}
	if paymentStatus != "" {
		patch["payment_status"] = paymentStatus
	}
	return s.col.Update(ctx, id, stampUpdate(patch))
}

// Delete removes the sale header only. Items keep their transaction_id;
// there is no cascade anywhere in the store.
func (s *TransactionService) Delete(ctx context.Context, id int) (bool, error) {
	return s.col.Delete(ctx, id)
}

// Checkout verifies stock, snapshots prices, persists the sale and its
// items, then deducts stock and bumps the sold counters through the catalog.
//
// The arithmetic it maintains:
//
//	item subtotal = quantity*price - item discount
//	total         = subtotal - discount + tax
func (s *TransactionService) Checkout(ctx context.Context, req CheckoutRequest, createdBy string) (*models.Transaction, []models.TransactionItem, error) {
	var subtotal float64
	lines := make([]models.TransactionItem, 0, len(req.Items))

	for _, item := range req.Items {
		p := s.catalog.Product(item.ProductID)
		if p == nil {
			return nil, nil, errors.Errorf("product %d not found", item.ProductID)
		}
		if item.Quantity <= 0 {
			return nil, nil, errors.Errorf("invalid quantity for %s", p.Name)
		}
		if p.Stock < item.Quantity {
			return nil, nil, errors.Errorf("insufficient stock for %s", p.Name)
		}
		lineSubtotal := float64(item.Quantity)*p.Price - item.Discount
		subtotal += lineSubtotal
		lines = append(lines, models.TransactionItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Price:       p.Price,
			Discount:    item.Discount,
			Subtotal:    lineSubtotal,
		})
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	tx := models.Transaction{
		TransactionNumber: NewUID("TRX"),
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Subtotal:          subtotal,
		Discount:          req.Discount,
		Tax:               req.Tax,
		Total:             subtotal - req.Discount + req.Tax,
		PaymentMethod:     paymentMethod,
		PaymentStatus:     models.PaymentPaid,
		Status:            models.StatusCompleted,
		CreatedBy:         createdBy,
	}
	stampCreate(&tx.CreatedAt, &tx.UpdatedAt)

	created, err := s.col.Add(ctx, tx)
	if err != nil {
		return nil, nil, err
	}

	saved := make([]models.TransactionItem, 0, len(lines))
	for _, line := range lines {
		line.TransactionID = created.ID
		item, err := s.items.Add(ctx, line)
		if err != nil {
			return nil, nil, err
		}
		saved = append(saved, *item)
	}

	for _, line := range saved {
		if _, err := s.catalog.UpdateStock(ctx, line.ProductID, -line.Quantity); err != nil {
			return nil, nil, err
		}
		if _, err := s.catalog.UpdateSold(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, nil, err
		}
	}

	return created, saved, nil
}
