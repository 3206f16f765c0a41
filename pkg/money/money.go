package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Format is the canonical BRL wire format: "R$ 150.00". The storefront once
// rendered "R$150,00" in a few places; the submission contract won and every
// surface now goes through this formatter.
func Format(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

var amountPattern = regexp.MustCompile(`^R\$\s(\d+\.\d{2})$`)

// Parse reads a canonical BRL string back into a decimal.
func Parse(value string) (decimal.Decimal, error) {
	match := amountPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q, expected R$ 999.99", value)
	}
	return decimal.NewFromString(match[1])
}
