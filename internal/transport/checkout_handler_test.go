package transport

import (
	"net/http"
	"testing"

	"club-merch/internal/domain"
	"club-merch/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeDeliveryRequest() DeliveryRequest {
	return DeliveryRequest{
		Type: "home", Name: "Erik Andersson", Email: "erik@example.com",
		Street: "Storgatan 12", Zip: "245 31", City: "Staffanstorp",
	}
}

func startCheckout(t *testing.T, env *testEnv, token string) {
	t.Helper()

	addBasicTee(t, env, token, 2)
	rec := env.do(t, http.MethodPost, "/api/checkout",
		StartCheckoutRequest{ClubID: "uif"}, cartCookie(token), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestStartCheckoutEmptyCartConflicts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/checkout",
		StartCheckoutRequest{ClubID: "uif"}, cartCookie("session"), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Din kundvagn är tom")
}

func TestCheckoutStateEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/checkout", nil, cartCookie("session"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	startCheckout(t, env, "session")

	var state service.CheckoutState
	rec = env.do(t, http.MethodGet, "/api/checkout", nil, cartCookie("session"), &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepDelivery, state.Step)
	assert.Equal(t, "uif", state.ClubID)
}

func TestPaymentOptionsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var options []service.PaymentOption
	rec := env.do(t, http.MethodGet, "/api/checkout/payment-options", nil, cartCookie("session"), &options)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, options, 3)
	assert.Equal(t, "Kortbetalning", options[2].Label)
	assert.False(t, options[2].Selectable)
}

func TestDeliveryStepEndpoint(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")

	var state service.CheckoutState
	rec := env.do(t, http.MethodPost, "/api/checkout/delivery",
		homeDeliveryRequest(), cartCookie("session"), &state)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepPayment, state.Step)
	assert.Equal(t, 49, state.ShippingCost)
}

func TestDeliveryStepValidation(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")

	// An unknown type fails the oneof validation before the service runs.
	bad := homeDeliveryRequest()
	bad.Type = "drone"
	rec := env.do(t, http.MethodPost, "/api/checkout/delivery", bad, cartCookie("session"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Home delivery without a full address is rejected by the service.
	incomplete := homeDeliveryRequest()
	incomplete.Street = ""
	rec = env.do(t, http.MethodPost, "/api/checkout/delivery", incomplete, cartCookie("session"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentStepEndpoint(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")

	// Payment before delivery conflicts with the wizard order.
	rec := env.do(t, http.MethodPost, "/api/checkout/payment",
		PaymentRequest{Method: "swish"}, cartCookie("session"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	env.do(t, http.MethodPost, "/api/checkout/delivery", homeDeliveryRequest(), cartCookie("session"), nil)

	// The disabled card option cannot be chosen.
	rec = env.do(t, http.MethodPost, "/api/checkout/payment",
		PaymentRequest{Method: "card"}, cartCookie("session"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var state service.CheckoutState
	rec = env.do(t, http.MethodPost, "/api/checkout/payment",
		PaymentRequest{Method: "swish"}, cartCookie("session"), &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepReview, state.Step)
}

func TestBackEndpoint(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")

	// No step before delivery.
	rec := env.do(t, http.MethodPost, "/api/checkout/back", nil, cartCookie("session"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	env.do(t, http.MethodPost, "/api/checkout/delivery", homeDeliveryRequest(), cartCookie("session"), nil)

	var state service.CheckoutState
	rec = env.do(t, http.MethodPost, "/api/checkout/back", nil, cartCookie("session"), &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepDelivery, state.Step)
}

func TestConfirmEndpoint(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")
	env.do(t, http.MethodPost, "/api/checkout/delivery", homeDeliveryRequest(), cartCookie("session"), nil)
	env.do(t, http.MethodPost, "/api/checkout/payment", PaymentRequest{Method: "klarna"}, cartCookie("session"), nil)

	var confirmation service.Confirmation
	rec := env.do(t, http.MethodPost, "/api/checkout/confirm", nil, cartCookie("session"), &confirmation)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, confirmation.OrderID)
	assert.Equal(t, 498, confirmation.Subtotal)
	assert.Equal(t, 49, confirmation.ShippingCost)
	assert.Equal(t, 547, confirmation.Total)
	assert.Equal(t, domain.PaymentKlarna, confirmation.Payment)

	// The cart is empty and the wizard gone after confirmation.
	var cart CartResponse
	rec = env.do(t, http.MethodGet, "/api/cart", nil, cartCookie("session"), &cart)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items)

	rec = env.do(t, http.MethodPost, "/api/checkout/confirm", nil, cartCookie("session"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmRequiresReviewStep(t *testing.T) {
	env := newTestEnv(t)
	startCheckout(t, env, "session")
	env.do(t, http.MethodPost, "/api/checkout/delivery", homeDeliveryRequest(), cartCookie("session"), nil)

	rec := env.do(t, http.MethodPost, "/api/checkout/confirm", nil, cartCookie("session"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
