package domain

import (
	"math/rand"
	"time"
)

// DeliveryType selects how an order is delivered.
type DeliveryType string

const (
	DeliveryHome DeliveryType = "home"
	DeliveryClub DeliveryType = "club"
)

// Valid reports whether the delivery type is one of the known values.
func (d DeliveryType) Valid() bool {
	return d == DeliveryHome || d == DeliveryClub
}

// PaymentMethod is a checkout payment option.
type PaymentMethod string

const (
	PaymentSwish  PaymentMethod = "swish"
	PaymentKlarna PaymentMethod = "klarna"
	// PaymentCard is shown as a "coming soon" placeholder and is not
	// selectable.
	PaymentCard PaymentMethod = "card"
)

// Selectable reports whether the method can actually be chosen at checkout.
func (p PaymentMethod) Selectable() bool {
	return p == PaymentSwish || p == PaymentKlarna
}

// OrderStatus is the fulfillment state of a placed order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// OrderItem is a price-snapshotted line of a placed order.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Variant     string `json:"variant"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}

// Order is a placed order. Orders are read-only reference data used as the
// analytics source for the dashboards; they are never mutated at runtime.
type Order struct {
	ID            string        `json:"id"`
	ClubID        string        `json:"clubId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Items         []OrderItem   `json:"items"`
	Total         int           `json:"total"`
	DeliveryType  DeliveryType  `json:"deliveryType"`
	Address       string        `json:"address,omitempty"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Period is a dashboard time window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// Valid reports whether the period is one of the known windows.
func (p Period) Valid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodQuarter
}

// Cutoff returns the start of the period relative to now. Month and quarter
// use calendar-month arithmetic rather than fixed day counts.
func (p Period) Cutoff(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodQuarter:
		return now.AddDate(0, -3, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderID generates a display order reference of the form ORD-XXXXXXXX.
func NewOrderID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return "ORD-" + string(b)
}
