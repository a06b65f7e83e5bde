package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"club-merch/internal/domain"
	"club-merch/internal/repository"
)

// CategoryRevenue is the accumulated revenue of one product category within
// a period.
type CategoryRevenue struct {
	Category string `json:"category"`
	Revenue  int    `json:"revenue"`
}

// ProductSales is the accumulated quantity and revenue of one product
// within a period.
type ProductSales struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Revenue   int    `json:"revenue"`
}

// Summary is the dashboard overview for one period, optionally scoped to a
// single club.
type Summary struct {
	Period            domain.Period     `json:"period"`
	TotalRevenue      int               `json:"totalRevenue"`
	OrderCount        int               `json:"orderCount"`
	RevenueByCategory []CategoryRevenue `json:"revenueByCategory"`
	TopProducts       []ProductSales    `json:"topProducts"`
}

// TopProductCount bounds the top-products list.
const TopProductCount = 5

// AnalyticsService aggregates the order history for the dashboards. All
// methods are pure reads over immutable data: deterministic for a given
// now, idempotent, safe to recompute per request.
type AnalyticsService interface {
	Summarize(ctx context.Context, period domain.Period, clubID string, now time.Time) (*Summary, error)
	Orders(ctx context.Context, period domain.Period, clubID string, now time.Time) ([]*domain.Order, error)
}

type analyticsService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewAnalyticsService creates an analytics service over the order history.
func NewAnalyticsService(orders repository.OrderRepository, products repository.ProductRepository) AnalyticsService {
	return &analyticsService{orders: orders, products: products}
}

// FilterOrders keeps orders created at or after the period cutoff relative
// to now. An empty clubID keeps orders from every club.
func FilterOrders(orders []*domain.Order, period domain.Period, now time.Time, clubID string) []*domain.Order {
	cutoff := period.Cutoff(now)
	out := []*domain.Order{}
	for _, o := range orders {
		if o.CreatedAt.Before(cutoff) {
			continue
		}
		if clubID != "" && o.ClubID != clubID {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Orders returns the filtered order list for the period, newest first.
func (s *analyticsService) Orders(ctx context.Context, period domain.Period, clubID string, now time.Time) ([]*domain.Order, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	filtered := FilterOrders(all, period, now, clubID)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// Summarize computes total revenue, order count, revenue per category and
// the top products for the period.
func (s *analyticsService) Summarize(ctx context.Context, period domain.Period, clubID string, now time.Time) (*Summary, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	filtered := FilterOrders(all, period, now, clubID)

	summary := &Summary{
		Period:     period,
		OrderCount: len(filtered),
	}

	categoryRevenue := map[string]int{}
	productSales := map[string]*ProductSales{}

	for _, order := range filtered {
		summary.TotalRevenue += order.Total

		for _, item := range order.Items {
			revenue := item.Price * item.Quantity

			// Items whose product has left the catalog are skipped for the
			// category breakdown but still count toward product sales, the
			// order snapshot being the source of truth for those.
			if product, perr := s.products.FindByID(ctx, item.ProductID); perr == nil {
				categoryRevenue[product.Category] += revenue
			}

			sales, ok := productSales[item.ProductID]
			if !ok {
				sales = &ProductSales{ProductID: item.ProductID, Name: item.ProductName}
				productSales[item.ProductID] = sales
			}
			sales.Quantity += item.Quantity
			sales.Revenue += revenue
		}
	}

	for category, revenue := range categoryRevenue {
		summary.RevenueByCategory = append(summary.RevenueByCategory, CategoryRevenue{
			Category: category,
			Revenue:  revenue,
		})
	}
	sort.Slice(summary.RevenueByCategory, func(i, j int) bool {
		a, b := summary.RevenueByCategory[i], summary.RevenueByCategory[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Category < b.Category
	})

	for _, sales := range productSales {
		summary.TopProducts = append(summary.TopProducts, *sales)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		a, b := summary.TopProducts[i], summary.TopProducts[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.ProductID < b.ProductID
	})
	if len(summary.TopProducts) > TopProductCount {
		summary.TopProducts = summary.TopProducts[:TopProductCount]
	}

	return summary, nil
}
