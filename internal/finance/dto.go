package finance

import (
	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
)

// Summary is the admin sales report for one filter window. Every aggregate
// counts delivered orders only.
type Summary struct {
	Year       int            `json:"ano"`
	Month      int            `json:"mes,omitempty"`
	Day        int            `json:"dia,omitempty"`
	Revenue    string         `json:"receita_total"`
	ItemsSold  int            `json:"itens_vendidos"`
	ByPayment  []PaymentSlice `json:"por_pagamento"`
	TopFlavors []FlavorSlice  `json:"sabores_mais_vendidos"`
	Series     []SeriesPoint  `json:"serie_itens"`
}

// PaymentSlice is one payment method's share of revenue, sorted descending.
type PaymentSlice struct {
	Method enums.PaymentMethod `json:"metodo"`
	Total  string              `json:"total"`

	raw decimal.Decimal
}

// FlavorSlice is one flavor's sold quantity, sorted descending.
type FlavorSlice struct {
	Flavor string `json:"sabor"`
	Qty    int    `json:"quantidade"`
}

// SeriesPoint is one bucket of the items-sold chart: a month of the year or
// a day of the filtered month.
type SeriesPoint struct {
	Label string `json:"rotulo"`
	Items int    `json:"itens"`
}
