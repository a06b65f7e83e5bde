package domain

// CheckoutStep is one state of the linear checkout wizard. Steps advance
// Delivery -> Payment -> Review; backward transitions go one step at a time.
type CheckoutStep string

const (
	StepDelivery CheckoutStep = "delivery"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
)

// String representation (for logging)
func (s CheckoutStep) String() string {
	return string(s)
}

// DeliveryDetails captures the delivery form. Home delivery requires the
// full postal address; club pickup only needs name and email.
type DeliveryDetails struct {
	Type   DeliveryType `json:"type"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Street string       `json:"street,omitempty"`
	Zip    string       `json:"zip,omitempty"`
	City   string       `json:"city,omitempty"`
}
