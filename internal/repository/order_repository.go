package repository

import (
	"context"

	"club-merch/internal/domain"
)

// OrderRepository defines read access to the placed-order history used as
// the analytics source. Orders are never mutated at runtime.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	ListByClub(ctx context.Context, clubID string) ([]*domain.Order, error)
}

type orderRepository struct {
	orders []*domain.Order
}

// NewOrderRepository creates an order repository over the given order set.
func NewOrderRepository(orders []*domain.Order) OrderRepository {
	return &orderRepository{orders: orders}
}

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *orderRepository) ListByClub(ctx context.Context, clubID string) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for _, o := range r.orders {
		if o.ClubID == clubID {
			out = append(out, o)
		}
	}
	return out, nil
}
