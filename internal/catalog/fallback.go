package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
)

// FallbackMenu returns the two house flavors served when the catalog storage
// is unreachable. The storefront must always render something sellable.
func FallbackMenu() []models.Product {
	return []models.Product{
		{
			Name:        "Calabresa",
			Image:       "img/calabresa.png",
			PriceSmall:  decimal.NewFromInt(30),
			PriceMedium: decimal.NewFromInt(55),
			PriceLarge:  decimal.NewFromInt(75),
		},
		{
			Name:        "Marguerita",
			Image:       "img/marguerita.png",
			PriceSmall:  decimal.NewFromInt(32),
			PriceMedium: decimal.NewFromInt(58),
			PriceLarge:  decimal.NewFromInt(78),
		},
	}
}
