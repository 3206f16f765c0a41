package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutorres-dev/BellaVitta/internal/cart"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
)

func TestEncodeCanonicalGrammar(t *testing.T) {
	items := []Item{
		{Qty: 2, Flavor: "Calabresa", Size: enums.PizzaSizeLarge, LineTotal: decimal.NewFromInt(150), HasTotal: true},
		{Qty: 1, Flavor: "Marguerita", Size: enums.PizzaSizeMedium, LineTotal: decimal.NewFromInt(58), HasTotal: true},
	}
	encoded := Encode(items)
	assert.Equal(t, "2x Calabresa (Grande) – R$ 150.00, 1x Marguerita (Média) – R$ 58.00", encoded)
}

func TestParseDecodesEncodedItems(t *testing.T) {
	items, err := Parse("2x Calabresa (Grande) – R$ 150.00, 1x Marguerita (Média) – R$ 58.00")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, "Calabresa", items[0].Flavor)
	assert.Equal(t, enums.PizzaSizeLarge, items[0].Size)
	require.True(t, items[0].HasTotal)
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(150)))

	assert.Equal(t, "Marguerita", items[1].Flavor)
	assert.Equal(t, enums.PizzaSizeMedium, items[1].Size)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	original := []Item{
		{Qty: 3, Flavor: "Quatro Queijos", Size: enums.PizzaSizeSmall, LineTotal: decimal.RequireFromString("96.00"), HasTotal: true},
		{Qty: 1, Flavor: "Calabresa", Size: enums.PizzaSizeLarge, LineTotal: decimal.RequireFromString("75.00"), HasTotal: true},
	}

	decoded, err := Parse(Encode(original))
	require.NoError(t, err)
	require.Len(t, decoded, len(original))
	for i := range original {
		assert.Equal(t, original[i].Qty, decoded[i].Qty)
		assert.Equal(t, original[i].Flavor, decoded[i].Flavor)
		assert.Equal(t, original[i].Size, decoded[i].Size)
		assert.True(t, original[i].LineTotal.Equal(decoded[i].LineTotal))
	}
}

func TestGroupedCartEncodingPassesTheGate(t *testing.T) {
	c := &cart.Cart{}
	add := func(flavor string, size enums.PizzaSize, price int64) {
		c.SelectItem(flavor, size, decimal.NewFromInt(price))
		require.NoError(t, c.ConfirmSelection())
	}
	add("Calabresa", enums.PizzaSizeLarge, 75)
	add("Calabresa", enums.PizzaSizeLarge, 75)
	add("Marguerita", enums.PizzaSizeSmall, 32)

	encoded := Encode(FromGrouped(c.GroupedView()))
	items, err := Parse(encoded)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Qty)
	assert.True(t, items[0].LineTotal.Equal(decimal.NewFromInt(150)))
}

func TestParseAcceptsMissingAmounts(t *testing.T) {
	items, err := Parse("1x Calabresa (Grande)")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].HasTotal)
}

func TestParseAcceptsHyphenAndCaseVariants(t *testing.T) {
	items, err := Parse("2x calabresa (grande) - R$ 150.00")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, enums.PizzaSizeLarge, items[0].Size)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"Calabresa (Grande)",
		"2 Calabresa Grande",
		"0x Calabresa (Grande)",
		"2x Calabresa (Gigante)",
		"2x Calabresa (Grande) – R$ 150,00",
	}
	for _, input := range cases {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}
