package services

import (
	"context"
	"sort"
	"time"

	"kasirpos/internal/catalog"
	"kasirpos/internal/models"
)

// ReportService aggregates sales and inventory figures from the persisted
// collections. Cancelled sales never count toward revenue.
type ReportService struct {
	transactions *TransactionService
	catalog      *catalog.Catalog
}

func NewReportService(transactions *TransactionService, cat *catalog.Catalog) *ReportService {
	return &ReportService{transactions: transactions, catalog: cat}
}

type TopSeller struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

type SalesSummary struct {
	TotalRevenue float64              `json:"total_revenue"`
	TotalOrders  int                  `json:"total_orders"`
	TopSelling   []TopSeller          `json:"top_selling"`
	RecentSales  []models.Transaction `json:"recent_sales"`
}

// Summary computes all-time revenue, order count, top 5 sellers and the 10
// most recent sales.
func (s *ReportService) Summary(ctx context.Context) (*SalesSummary, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.transactions.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	counted := make(map[int]bool, len(transactions))
	summary := &SalesSummary{}
	for _, tx := range transactions {
		if tx.Status == models.StatusCancelled {
			continue
		}
		counted[tx.ID] = true
		summary.TotalRevenue += tx.Total
		summary.TotalOrders++
	}

	byName := map[string]*TopSeller{}
	for _, item := range items {
		if !counted[item.TransactionID] {
			continue
		}
		top, ok := byName[item.ProductName]
		if !ok {
			top = &TopSeller{ProductName: item.ProductName}
			byName[item.ProductName] = top
		}
		top.Sold += item.Quantity
		top.Revenue += item.Subtotal
	}
	for _, top := range byName {
		summary.TopSelling = append(summary.TopSelling, *top)
	}
	sort.Slice(summary.TopSelling, func(i, j int) bool {
		return summary.TopSelling[i].Sold > summary.TopSelling[j].Sold
	})
	if len(summary.TopSelling) > 5 {
		summary.TopSelling = summary.TopSelling[:5]
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	if len(transactions) > 10 {
		transactions = transactions[:10]
	}
	summary.RecentSales = transactions
	return summary, nil
}

type RangeReport struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCount   int     `json:"total_count"`
}

// Range computes revenue and order count inside [start, end].
func (s *ReportService) Range(ctx context.Context, start, end time.Time) (*RangeReport, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &RangeReport{}
	for _, tx := range transactions {
		if tx.Status == models.StatusCancelled {
			continue
		}
		if tx.CreatedAt.Before(start) || tx.CreatedAt.After(end) {
			continue
		}
		report.TotalRevenue += tx.Total
		report.TotalCount++
	}
	return report, nil
}

type ValuationItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	CostPrice float64 `json:"cost_price"`
	TotalCost float64 `json:"total_cost"`
}

type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     float64         `json:"subtotal"`
}

type ValuationReport struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal float64         `json:"grand_total"`
}

// Valuation prices the physical inventory at cost (stock * modal), grouped
// by category name. Products without a known category land in
// "Uncategorized".
func (s *ReportService) Valuation(_ context.Context) *ValuationReport {
	grouped := map[string]*CategoryGroup{}
	report := &ValuationReport{}

	for _, p := range s.catalog.Products() {
		name := "Uncategorized"
		if cat := s.catalog.Category(p.CategoryID); cat != nil {
			name = cat.Name
		}
		group, ok := grouped[name]
		if !ok {
			group = &CategoryGroup{CategoryName: name}
			grouped[name] = group
		}
		itemTotal := float64(p.Stock) * p.Modal
		group.Items = append(group.Items, ValuationItem{
			Name:      p.Name,
			Quantity:  p.Stock,
			CostPrice: p.Modal,
			TotalCost: itemTotal,
		})
		group.Subtotal += itemTotal
		report.GrandTotal += itemTotal
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.Categories = append(report.Categories, *grouped[name])
	}
	return report
}
