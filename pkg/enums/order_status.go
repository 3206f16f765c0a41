package enums

import "fmt"

// OrderStatus tracks an order through the kitchen and delivery lifecycle.
type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmado"
	OrderStatusOutForDely OrderStatus = "saiu para entrega"
	OrderStatusDelivered  OrderStatus = "entregue"
	OrderStatusCanceled   OrderStatus = "cancelado"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusOutForDely,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
