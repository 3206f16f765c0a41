package orders

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

// addressPattern accepts "Rua, Número, [casa N | apto N | bloco N]..., CEP"
// with either commas or plain spaces between the parts.
var addressPattern = regexp.MustCompile(
	`^(?i)[a-zA-ZáàâãéèêíïóôõöúçñÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇÑ\s]+(?:\s*,\s*|\s+)\d+(?:\s*,\s*|\s+)(?:casa\s+\d+|apto?\s+\d+|bloco\s+\d+)(?:(?:\s*,\s*|\s+)(?:casa\s+\d+|apto?\s+\d+|bloco\s+\d+))*(?:\s*,\s*|\s+)\d{5}-?\d{3}$`,
)

// ValidSubmission is the typed result of a submission that passed the gate.
type ValidSubmission struct {
	Items         []Item
	Description   string
	Total         decimal.Decimal
	Address       string
	PaymentMethod enums.PaymentMethod
}

// ValidateSubmission runs every field check and reports all failures at once.
// Nothing is written anywhere until this returns a nil error.
func ValidateSubmission(sub Submission) (*ValidSubmission, error) {
	var combined error
	details := map[string]string{}

	items, err := Parse(sub.Description)
	if err != nil {
		combined = multierr.Append(combined, err)
		details["descricao_pedido"] = "Formato inválido! Use: Qtdx Sabor (Tamanho) – R$ Valor. Ex: 2x Calabresa (Grande) – R$ 150.00"
	}

	total, err := money.Parse(sub.Total)
	if err != nil {
		combined = multierr.Append(combined, err)
		details["valor_total"] = "Formato inválido! Use: R$ 999.99"
	}

	if !addressPattern.MatchString(sub.Address) {
		combined = multierr.Append(combined, errInvalidAddress)
		details["endereco"] = "Formato de endereço inválido! Use: Nome da Rua, Número, [casa X], [apto Y], [bloco Z], CEP"
	}

	payment, err := enums.ParsePaymentMethod(sub.PaymentMethod)
	if err != nil {
		combined = multierr.Append(combined, err)
		details["metodo_pagamento"] = "Forma de pagamento inválida! Use: Pix, Cartão de Débito, Cartão de Crédito ou VR"
	}

	if combined != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, combined, "pedido inválido").
			WithDetails(details)
	}

	return &ValidSubmission{
		Items:         items,
		Description:   sub.Description,
		Total:         total,
		Address:       sub.Address,
		PaymentMethod: payment,
	}, nil
}

var errInvalidAddress = errors.New("endereço fora do formato aceito")
