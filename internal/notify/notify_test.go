package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutorres-dev/BellaVitta/pkg/config"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
)

func testOrder() *models.Order {
	return &models.Order{
		CustomerName:    "Maria",
		CustomerContact: "5511987654321",
		Description:     "2x Calabresa (Grande) – R$ 150.00, 1x Marguerita (Média) – R$ 58.00",
		OrderedAt:       time.Date(2026, 8, 29, 19, 30, 0, 0, time.UTC),
		Address:         "Rua das Flores, 123, casa 2, 01001-000",
		PaymentMethod:   enums.PaymentMethodPix,
		Total:           decimal.RequireFromString("208.00"),
	}
}

func newTestService() *Service {
	return NewService(config.StoreConfig{Name: "Bella Vitta", DeliveryETA: "40-60 minutos"})
}

func TestFormatConfirmationLayout(t *testing.T) {
	text := newTestService().FormatConfirmation(testOrder())

	assert.True(t, strings.HasPrefix(text, "*PEDIDO CONFIRMADO - BELLA VITTA*\n\n"))
	assert.Contains(t, text, "Olá, *Maria*! Seu pedido está sendo preparado!")
	assert.Contains(t, text, "*ITENS DO PEDIDO:*\n2x Calabresa (Grande) – R$ 150.00\n1x Marguerita (Média) – R$ 58.00")
	assert.Contains(t, text, "*Data/Hora:* 29/08/2026 às 19:30")
	assert.Contains(t, text, "*Endereço:* Rua das Flores 123 casa 2 01001-000")
	assert.Contains(t, text, "*Pagamento:* Pix")
	assert.Contains(t, text, "*Total:* R$ 208.00")
	assert.Contains(t, text, "*Tempo estimado:* 40-60 minutos")
	assert.True(t, strings.HasSuffix(text, "*Equipe Bella Vitta*"))
}

func TestFormatConfirmationIsDeterministic(t *testing.T) {
	svc := newTestService()
	order := testOrder()
	assert.Equal(t, svc.FormatConfirmation(order), svc.FormatConfirmation(order))
}

func TestLinkEncodesText(t *testing.T) {
	svc := newTestService()
	link := svc.Link("5511987654321", "Olá, *Maria*!")

	require.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}

func TestDefaultsApplyWhenConfigEmpty(t *testing.T) {
	svc := NewService(config.StoreConfig{})
	text := svc.FormatConfirmation(testOrder())
	assert.Contains(t, text, "BELLA VITTA")
	assert.Contains(t, text, "40-60 minutos")
}
