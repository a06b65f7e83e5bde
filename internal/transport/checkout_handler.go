package transport

import (
	"errors"
	"net/http"

	"club-merch/internal/domain"
	"club-merch/internal/middleware"
	"club-merch/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StartCheckoutRequest opens the wizard for the storefront the shopper is in.
type StartCheckoutRequest struct {
	ClubID string `json:"clubId" validate:"required"`
}

// DeliveryRequest represents the delivery step payload. Street, zip and
// city are required for home delivery only; the service enforces that.
type DeliveryRequest struct {
	Type   string `json:"type" validate:"required,oneof=home club"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Street string `json:"street"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

// PaymentRequest represents the payment step payload.
type PaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

// CheckoutHandler handles HTTP requests for the checkout wizard
type CheckoutHandler struct {
	checkout service.CheckoutService
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/", h.Start)
		r.Get("/", h.State)
		r.Get("/payment-options", h.PaymentOptions)
		r.Post("/delivery", h.SetDelivery)
		r.Post("/payment", h.SetPayment)
		r.Post("/back", h.Back)
		r.Post("/confirm", h.Confirm)
	})
}

// Start opens the checkout wizard. An empty cart is a conflict, surfaced
// with a localized message the storefront shows in place of the wizard.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	var req StartCheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.checkout.Start(r.Context(), token, req.ClubID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusConflict, "Din kundvagn är tom")
			return
		}
		h.logger.Error("Failed to start checkout", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to start checkout")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, state)
}

// State returns the current wizard state.
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	state, err := h.checkout.State(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrNoCheckout) {
			middleware.RespondWithError(w, http.StatusNotFound, "no active checkout")
			return
		}
		h.logger.Error("Failed to load checkout state", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load checkout")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, state)
}

// PaymentOptions lists the payment methods, including disabled placeholders.
func (h *CheckoutHandler) PaymentOptions(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.checkout.PaymentOptions())
}

// SetDelivery captures the delivery step and advances to payment.
func (h *CheckoutHandler) SetDelivery(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	var req DeliveryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Delivery validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	details := domain.DeliveryDetails{
		Type:   domain.DeliveryType(req.Type),
		Name:   req.Name,
		Email:  req.Email,
		Street: req.Street,
		Zip:    req.Zip,
		City:   req.City,
	}

	state, err := h.checkout.SetDelivery(r.Context(), token, details)
	if err != nil {
		h.respondTransitionError(w, err, "failed to set delivery")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, state)
}

// SetPayment captures the payment step and advances to review.
func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	var req PaymentRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.checkout.SetPayment(r.Context(), token, domain.PaymentMethod(req.Method))
	if err != nil {
		h.respondTransitionError(w, err, "failed to set payment")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, state)
}

// Back steps the wizard one step backwards.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	state, err := h.checkout.Back(r.Context(), token)
	if err != nil {
		h.respondTransitionError(w, err, "failed to step back")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, state)
}

// Confirm places the order and returns the confirmation. The simulated
// processing delay happens inside this call; clients disable the confirm
// control while it is in flight.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetCartToken(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing cart session")
		return
	}

	confirmation, err := h.checkout.Confirm(r.Context(), token)
	if err != nil {
		h.respondTransitionError(w, err, "failed to confirm order")
		return
	}

	h.logger.Info("Order confirmed", zap.String("order_id", confirmation.OrderID))
	middleware.RespondWithJSON(w, http.StatusOK, confirmation)
}

func (h *CheckoutHandler) respondTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoCheckout):
		middleware.RespondWithError(w, http.StatusNotFound, "no active checkout")
	case errors.Is(err, service.ErrInvalidTransition):
		middleware.RespondWithError(w, http.StatusConflict, "step not allowed from current state")
	case errors.Is(err, service.ErrEmptyCart):
		middleware.RespondWithError(w, http.StatusConflict, "Din kundvagn är tom")
	case errors.Is(err, service.ErrMissingAddress):
		middleware.RespondWithError(w, http.StatusBadRequest, "delivery address is incomplete")
	case errors.Is(err, service.ErrUnknownDelivery):
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown delivery type")
	case errors.Is(err, service.ErrPaymentUnavailable):
		middleware.RespondWithError(w, http.StatusBadRequest, "payment method not available")
	default:
		h.logger.Error("Checkout operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
