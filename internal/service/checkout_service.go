package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"club-merch/internal/domain"
	"club-merch/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoCheckout         = errors.New("no active checkout")
	ErrInvalidTransition  = errors.New("invalid checkout transition")
	ErrPaymentUnavailable = errors.New("payment method not available")
	ErrMissingAddress     = errors.New("delivery address is incomplete")
	ErrUnknownDelivery    = errors.New("unknown delivery type")
)

// CheckoutState is the persisted state of one checkout wizard run. The step
// sequence is strictly Delivery -> Payment -> Review; forward transitions
// happen through SetDelivery and SetPayment, backward ones through Back.
type CheckoutState struct {
	ClubID       string                  `json:"clubId"`
	Step         domain.CheckoutStep     `json:"step"`
	Delivery     *domain.DeliveryDetails `json:"delivery,omitempty"`
	ShippingCost int                     `json:"shippingCost"`
	Payment      domain.PaymentMethod    `json:"payment,omitempty"`
}

// Confirmation is the outcome of a confirmed checkout.
type Confirmation struct {
	OrderID      string               `json:"orderId"`
	Subtotal     int                  `json:"subtotal"`
	ShippingCost int                  `json:"shippingCost"`
	Total        int                  `json:"total"`
	DeliveryType domain.DeliveryType  `json:"deliveryType"`
	Payment      domain.PaymentMethod `json:"payment"`
}

// PaymentOption describes one entry of the payment step, including disabled
// "coming soon" placeholders.
type PaymentOption struct {
	Method     domain.PaymentMethod `json:"method"`
	Label      string               `json:"label"`
	Selectable bool                 `json:"selectable"`
}

// OrderSubmitter hands a finished order to the payment/fulfillment side.
// The production implementation would talk to Swish or Klarna; the shipped
// one simulates a fixed processing latency and always succeeds.
type OrderSubmitter interface {
	Submit(ctx context.Context, order *domain.Order) error
}

type simulatedSubmitter struct {
	delay time.Duration
}

// NewSimulatedSubmitter creates an OrderSubmitter that blocks for the given
// delay and then reports success.
func NewSimulatedSubmitter(delay time.Duration) OrderSubmitter {
	return &simulatedSubmitter{delay: delay}
}

func (s *simulatedSubmitter) Submit(ctx context.Context, order *domain.Order) error {
	// Not cancellable: an in-flight confirmation cannot be aborted.
	time.Sleep(s.delay)
	return nil
}

// CheckoutService drives the three-step checkout wizard for one session.
type CheckoutService interface {
	Start(ctx context.Context, token, clubID string) (*CheckoutState, error)
	State(ctx context.Context, token string) (*CheckoutState, error)
	SetDelivery(ctx context.Context, token string, details domain.DeliveryDetails) (*CheckoutState, error)
	SetPayment(ctx context.Context, token string, method domain.PaymentMethod) (*CheckoutState, error)
	Back(ctx context.Context, token string) (*CheckoutState, error)
	Confirm(ctx context.Context, token string) (*Confirmation, error)
	PaymentOptions() []PaymentOption
}

type checkoutService struct {
	store        storage.Store
	carts        CartService
	submitter    OrderSubmitter
	shippingCost int
	logger       *zap.Logger
}

// NewCheckoutService creates a checkout service. shippingCost is the flat
// home-delivery fee added to the cart subtotal.
func NewCheckoutService(
	store storage.Store,
	carts CartService,
	submitter OrderSubmitter,
	shippingCost int,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutService{
		store:        store,
		carts:        carts,
		submitter:    submitter,
		shippingCost: shippingCost,
		logger:       logger,
	}
}

func checkoutKey(token string) string {
	return "checkout:" + token
}

// Start opens the wizard at the delivery step. A session with an empty cart
// cannot enter checkout.
func (s *checkoutService) Start(ctx context.Context, token, clubID string) (*CheckoutState, error) {
	cart := s.carts.Get(ctx, token)
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	state := &CheckoutState{
		ClubID: clubID,
		Step:   domain.StepDelivery,
	}
	if err := s.save(ctx, token, state); err != nil {
		return nil, err
	}
	return state, nil
}

// State returns the current wizard state, or ErrNoCheckout when the session
// has no checkout in progress.
func (s *checkoutService) State(ctx context.Context, token string) (*CheckoutState, error) {
	data, err := s.store.Get(ctx, checkoutKey(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoCheckout
		}
		return nil, fmt.Errorf("failed to load checkout state: %w", err)
	}

	var state CheckoutState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt state cannot be resumed; drop it so the shopper can
		// start over.
		s.logger.Warn("Discarding malformed checkout state", zap.Error(err))
		s.discard(ctx, token)
		return nil, ErrNoCheckout
	}
	return &state, nil
}

// SetDelivery captures the delivery choice and advances to the payment
// step. Home delivery requires a complete postal address and adds the flat
// shipping fee; club pickup is free and needs contact details only.
func (s *checkoutService) SetDelivery(ctx context.Context, token string, details domain.DeliveryDetails) (*CheckoutState, error) {
	state, err := s.State(ctx, token)
	if err != nil {
		return nil, err
	}
	if state.Step != domain.StepDelivery {
		return nil, ErrInvalidTransition
	}

	switch details.Type {
	case domain.DeliveryHome:
		if details.Name == "" || details.Email == "" || details.Street == "" || details.Zip == "" || details.City == "" {
			return nil, ErrMissingAddress
		}
		state.ShippingCost = s.shippingCost
	case domain.DeliveryClub:
		if details.Name == "" || details.Email == "" {
			return nil, ErrMissingAddress
		}
		state.ShippingCost = 0
	default:
		return nil, ErrUnknownDelivery
	}

	state.Delivery = &details
	state.Step = domain.StepPayment
	if err := s.save(ctx, token, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetPayment captures the payment method and advances to the review step.
// Placeholder methods such as card are rejected as not yet available.
func (s *checkoutService) SetPayment(ctx context.Context, token string, method domain.PaymentMethod) (*CheckoutState, error) {
	state, err := s.State(ctx, token)
	if err != nil {
		return nil, err
	}
	if state.Step != domain.StepPayment {
		return nil, ErrInvalidTransition
	}
	if !method.Selectable() {
		return nil, ErrPaymentUnavailable
	}

	state.Payment = method
	state.Step = domain.StepReview
	if err := s.save(ctx, token, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Back moves one step backwards: Payment to Delivery, Review to Payment.
// There is nothing before the delivery step.
func (s *checkoutService) Back(ctx context.Context, token string) (*CheckoutState, error) {
	state, err := s.State(ctx, token)
	if err != nil {
		return nil, err
	}

	switch state.Step {
	case domain.StepPayment:
		state.Step = domain.StepDelivery
	case domain.StepReview:
		state.Step = domain.StepPayment
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.save(ctx, token, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Confirm places the order. Only reachable from the review step; on success
// the cart is cleared and the checkout state removed, so a repeated confirm
// fails with ErrNoCheckout.
func (s *checkoutService) Confirm(ctx context.Context, token string) (*Confirmation, error) {
	state, err := s.State(ctx, token)
	if err != nil {
		return nil, err
	}
	if state.Step != domain.StepReview {
		return nil, ErrInvalidTransition
	}

	cart := s.carts.Get(ctx, token)
	if cart.IsEmpty() {
		s.discard(ctx, token)
		return nil, ErrEmptyCart
	}

	order := buildOrder(state, cart)
	if err := s.submitter.Submit(ctx, order); err != nil {
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	s.carts.Clear(ctx, token)
	s.discard(ctx, token)

	s.logger.Info("Checkout confirmed",
		zap.String("order_id", order.ID),
		zap.String("club_id", order.ClubID),
		zap.Int("total", order.Total),
	)

	return &Confirmation{
		OrderID:      order.ID,
		Subtotal:     cart.TotalPrice(),
		ShippingCost: state.ShippingCost,
		Total:        order.Total,
		DeliveryType: state.Delivery.Type,
		Payment:      state.Payment,
	}, nil
}

// PaymentOptions lists the payment step entries in display order.
func (s *checkoutService) PaymentOptions() []PaymentOption {
	return []PaymentOption{
		{Method: domain.PaymentSwish, Label: "Swish", Selectable: true},
		{Method: domain.PaymentKlarna, Label: "Klarna", Selectable: true},
		{Method: domain.PaymentCard, Label: "Kortbetalning", Selectable: false},
	}
}

func buildOrder(state *CheckoutState, cart *domain.Cart) *domain.Order {
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Size:        line.Size,
			Variant:     line.Variant,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	address := ""
	if state.Delivery.Type == domain.DeliveryHome {
		address = fmt.Sprintf("%s, %s %s", state.Delivery.Street, state.Delivery.Zip, state.Delivery.City)
	}

	return &domain.Order{
		ID:            domain.NewOrderID(),
		ClubID:        state.ClubID,
		CustomerName:  state.Delivery.Name,
		CustomerEmail: state.Delivery.Email,
		Items:         items,
		Total:         cart.TotalPrice() + state.ShippingCost,
		DeliveryType:  state.Delivery.Type,
		Address:       address,
		Status:        domain.OrderPending,
		CreatedAt:     time.Now().UTC(),
		PaymentMethod: state.Payment,
	}
}

func (s *checkoutService) save(ctx context.Context, token string, state *CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize checkout state: %w", err)
	}
	if err := s.store.Set(ctx, checkoutKey(token), data); err != nil {
		return fmt.Errorf("failed to persist checkout state: %w", err)
	}
	return nil
}

func (s *checkoutService) discard(ctx context.Context, token string) {
	if err := s.store.Delete(ctx, checkoutKey(token)); err != nil {
		s.logger.Warn("Failed to discard checkout state", zap.Error(err))
	}
}
