package enums

import "fmt"

// PaymentMethod describes how the customer settles an order on delivery.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "Pix"
	PaymentMethodDebitCard  PaymentMethod = "Cartão de Débito"
	PaymentMethodCreditCard PaymentMethod = "Cartão de Crédito"
	PaymentMethodVR         PaymentMethod = "VR"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodPix,
	PaymentMethodDebitCard,
	PaymentMethodCreditCard,
	PaymentMethodVR,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
