package orders

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/internal/cart"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

// Item is one decoded line of an order description. Encode and Parse share
// this grammar with the submission gate and the finance parser:
//
//	<qty>x <sabor> (<Pequena|Média|Grande>) – R$ <valor>
//
// joined by ", ". The trailing amount is optional when parsing because older
// stored rows omit it.
type Item struct {
	Qty       int
	Flavor    string
	Size      enums.PizzaSize
	LineTotal decimal.Decimal
	HasTotal  bool
}

var itemPattern = regexp.MustCompile(
	`^(?i)(\d+)x\s+([a-zA-ZáàâãéèêíïóôõöúçñÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇÑ\s]+?)\s*\((Pequena|Média|Grande)\)(?:\s*[–-]\s*R\$\s*(\d+\.\d{2}))?$`,
)

// Encode renders items in the canonical description grammar.
func Encode(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.HasTotal {
			parts = append(parts, fmt.Sprintf("%dx %s (%s) – %s", item.Qty, item.Flavor, item.Size, money.Format(item.LineTotal)))
			continue
		}
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", item.Qty, item.Flavor, item.Size))
	}
	return strings.Join(parts, ", ")
}

// FromGrouped converts the cart's grouped view into codec items.
func FromGrouped(rows []cart.GroupedLine) []Item {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			Qty:       row.Qty,
			Flavor:    row.Flavor,
			Size:      row.Size,
			LineTotal: row.LineTotal,
			HasTotal:  true,
		})
	}
	return items
}

// Parse decodes a description back into items. Flavors are comma-free, so a
// plain comma split is safe.
func Parse(description string) ([]Item, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, fmt.Errorf("descrição vazia")
	}

	segments := strings.Split(trimmed, ",")
	items := make([]Item, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		match := itemPattern.FindStringSubmatch(segment)
		if match == nil {
			return nil, fmt.Errorf("item %q fora do formato Qtdx Sabor (Tamanho) – R$ Valor", segment)
		}

		qty, err := strconv.Atoi(match[1])
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("quantidade inválida em %q", segment)
		}

		size, err := enums.ParsePizzaSize(canonicalSize(match[3]))
		if err != nil {
			return nil, fmt.Errorf("tamanho inválido em %q", segment)
		}

		item := Item{
			Qty:    qty,
			Flavor: strings.TrimSpace(match[2]),
			Size:   size,
		}
		if match[4] != "" {
			amount, err := decimal.NewFromString(match[4])
			if err != nil {
				return nil, fmt.Errorf("valor inválido em %q", segment)
			}
			item.LineTotal = amount
			item.HasTotal = true
		}
		items = append(items, item)
	}
	return items, nil
}

// canonicalSize fixes the casing the case-insensitive pattern lets through.
func canonicalSize(raw string) string {
	switch strings.ToLower(raw) {
	case "pequena":
		return string(enums.PizzaSizeSmall)
	case "média":
		return string(enums.PizzaSizeMedium)
	case "grande":
		return string(enums.PizzaSizeLarge)
	}
	return raw
}
