package cart

import (
	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
)

// Line is one confirmed unit in the cart. Quantities are represented by
// repetition; grouping happens only at view time.
type Line struct {
	Flavor    string          `json:"sabor"`
	Size      enums.PizzaSize `json:"tamanho"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

// GroupedLine is one row of the grouped view: identical flavor/size/price
// lines collapsed with a quantity and a line total.
type GroupedLine struct {
	Qty       int             `json:"quantidade"`
	Flavor    string          `json:"sabor"`
	Size      enums.PizzaSize `json:"tamanho"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
	LineTotal decimal.Decimal `json:"subtotal"`
}

// Cart holds one customer's in-progress order. The pending selection models
// the storefront's two-step flow: pick a flavor and size, then confirm it
// into the cart. All state lives on the value; the store loads and saves it.
type Cart struct {
	Pending *Line  `json:"selecao,omitempty"`
	Lines   []Line `json:"itens"`
}

// SelectItem stages a flavor/size selection, replacing any prior one.
func (c *Cart) SelectItem(flavor string, size enums.PizzaSize, unitPrice decimal.Decimal) {
	c.Pending = &Line{Flavor: flavor, Size: size, UnitPrice: unitPrice}
}

// ConfirmSelection moves the pending selection into the cart.
func (c *Cart) ConfirmSelection() error {
	if c.Pending == nil {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "nenhum item selecionado")
	}
	c.Lines = append(c.Lines, *c.Pending)
	c.Pending = nil
	return nil
}

// RemoveOne removes at most one line matching the flavor and unit price.
// A key with no match is a no-op.
func (c *Cart) RemoveOne(flavor string, unitPrice decimal.Decimal) bool {
	for i, line := range c.Lines {
		if line.Flavor == flavor && line.UnitPrice.Equal(unitPrice) {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// GroupedView collapses identical lines into quantity rows, preserving
// first-appearance order.
func (c *Cart) GroupedView() []GroupedLine {
	type key struct {
		flavor string
		size   enums.PizzaSize
		price  string
	}

	index := map[key]int{}
	grouped := []GroupedLine{}
	for _, line := range c.Lines {
		k := key{flavor: line.Flavor, size: line.Size, price: line.UnitPrice.StringFixed(2)}
		if pos, ok := index[k]; ok {
			grouped[pos].Qty++
			grouped[pos].LineTotal = grouped[pos].LineTotal.Add(line.UnitPrice)
			continue
		}
		index[k] = len(grouped)
		grouped = append(grouped, GroupedLine{
			Qty:       1,
			Flavor:    line.Flavor,
			Size:      line.Size,
			UnitPrice: line.UnitPrice,
			LineTotal: line.UnitPrice,
		})
	}
	return grouped
}

// Total sums the unit prices of every confirmed line.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice)
	}
	return total
}

// Count returns the number of confirmed units.
func (c *Cart) Count() int {
	return len(c.Lines)
}

// Clear drops every line and any pending selection.
func (c *Cart) Clear() {
	c.Pending = nil
	c.Lines = nil
}
