package models

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // order placed, not yet picked up
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the order
)

// statusRank orders the lifecycle; transitions advance exactly one step.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

var ErrBadTransition = errors.New("invalid order status transition")

// ParseOrderStatus maps a raw string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := statusRank[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

// ValidTransition reports whether to directly follows from. The lifecycle is
// pending -> processing -> shipped -> delivered, no skipping, no reversal.
func ValidTransition(from, to OrderStatus) bool {
	a, okA := statusRank[from]
	b, okB := statusRank[to]
	return okA && okB && b == a+1
}

// CustomerInfo is the contact block captured at checkout time.
type CustomerInfo struct {
	Name    string `json:"customerName"`
	Email   string `json:"customerEmail"`
	Phone   string `json:"customerPhone"`
	Address string `json:"shippingAddress"`
}

// Order is an immutable snapshot of a checked-out cart, except for Status
// and fields explicitly passed to an update.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []CartItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}
