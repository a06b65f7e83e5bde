package service

import (
	"context"
	"encoding/json"
	"errors"

	"club-merch/internal/domain"
	"club-merch/internal/storage"

	"go.uber.org/zap"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartService manages the per-session shopping cart. Every mutation is
// written through to the session store; reads that find nothing, or find a
// blob that no longer parses, silently yield an empty cart.
type CartService interface {
	Get(ctx context.Context, token string) *domain.Cart
	AddItem(ctx context.Context, token string, item domain.CartItem) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, token, productID, size, variant string, quantity int) *domain.Cart
	RemoveItem(ctx context.Context, token, productID, size, variant string) *domain.Cart
	Clear(ctx context.Context, token string)
}

type cartService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewCartService creates a cart service backed by the given session store.
func NewCartService(store storage.Store, logger *zap.Logger) CartService {
	return &cartService{store: store, logger: logger}
}

func cartKey(token string) string {
	return "cart:" + token
}

// Get loads the cart for the session. Absent or malformed stored data is
// treated as an empty cart; the failure is never surfaced to the caller.
func (s *cartService) Get(ctx context.Context, token string) *domain.Cart {
	data, err := s.store.Get(ctx, cartKey(token))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Failed to load cart, falling back to empty",
				zap.Error(err))
		}
		return &domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Warn("Discarding malformed stored cart", zap.Error(err))
		return &domain.Cart{}
	}

	return &cart
}

// AddItem merges the item into the cart. If a line with the same
// (productId, size, variant) triple already exists its quantity grows by the
// added quantity; otherwise the line is appended.
func (s *cartService) AddItem(ctx context.Context, token string, item domain.CartItem) (*domain.Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart := s.Get(ctx, token)
	if idx := cart.Find(item.ProductID, item.Size, item.Variant); idx >= 0 {
		cart.Items[idx].Quantity += item.Quantity
	} else {
		cart.Items = append(cart.Items, item)
	}

	s.persist(ctx, token, cart)
	return cart, nil
}

// UpdateQuantity replaces the matching line's quantity. A quantity of zero
// or less removes the line instead of storing a non-positive value.
func (s *cartService) UpdateQuantity(ctx context.Context, token, productID, size, variant string, quantity int) *domain.Cart {
	if quantity <= 0 {
		return s.RemoveItem(ctx, token, productID, size, variant)
	}

	cart := s.Get(ctx, token)
	if idx := cart.Find(productID, size, variant); idx >= 0 {
		cart.Items[idx].Quantity = quantity
		s.persist(ctx, token, cart)
	}
	return cart
}

// RemoveItem deletes the matching line. Removing a line that does not exist
// is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, token, productID, size, variant string) *domain.Cart {
	cart := s.Get(ctx, token)
	idx := cart.Find(productID, size, variant)
	if idx < 0 {
		return cart
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	s.persist(ctx, token, cart)
	return cart
}

// Clear empties the cart. Called once per purchase, on checkout confirmation.
func (s *cartService) Clear(ctx context.Context, token string) {
	if err := s.store.Delete(ctx, cartKey(token)); err != nil {
		s.logger.Warn("Failed to clear stored cart", zap.Error(err))
	}
}

// persist writes the cart to the session store. Write failures are logged
// and ignored; the in-memory cart returned to the caller stays correct.
func (s *cartService) persist(ctx context.Context, token string, cart *domain.Cart) {
	data, err := json.Marshal(cart)
	if err != nil {
		s.logger.Warn("Failed to serialize cart", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, cartKey(token), data); err != nil {
		s.logger.Warn("Failed to persist cart", zap.Error(err))
	}
}
