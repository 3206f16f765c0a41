package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/edutorres-dev/BellaVitta/pkg/config"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

// Service formats the deterministic WhatsApp confirmation and its deep link.
// Nothing is sent server-side; the client opens the link.
type Service struct {
	storeName   string
	deliveryETA string
}

// NewService builds the notifier from the store settings.
func NewService(cfg config.StoreConfig) *Service {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Bella Vitta"
	}
	eta := strings.TrimSpace(cfg.DeliveryETA)
	if eta == "" {
		eta = "40-60 minutos"
	}
	return &Service{storeName: name, deliveryETA: eta}
}

// FormatConfirmation renders the confirmation text for one persisted order.
// The items block turns the description's comma separators into line breaks;
// the address block flattens commas into spaces.
func (s *Service) FormatConfirmation(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*PEDIDO CONFIRMADO - %s*\n\n", strings.ToUpper(s.storeName))
	fmt.Fprintf(&b, "Olá, *%s*! Seu pedido está sendo preparado!\n\n", order.CustomerName)

	b.WriteString("*ITENS DO PEDIDO:*\n")
	b.WriteString(strings.ReplaceAll(order.Description, ", ", "\n"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "*Data/Hora:* %s\n\n", order.OrderedAt.Format("02/01/2006 às 15:04"))
	fmt.Fprintf(&b, "*Endereço:* %s\n\n", strings.ReplaceAll(order.Address, ", ", " "))
	fmt.Fprintf(&b, "*Pagamento:* %s\n\n", order.PaymentMethod)
	fmt.Fprintf(&b, "*Total:* %s\n\n", money.Format(order.Total))

	fmt.Fprintf(&b, "*Tempo estimado:* %s\n", s.deliveryETA)
	b.WriteString("(Avisaremos quando sair para entrega!)\n\n")

	b.WriteString("Agradecemos sua preferência! \n")
	fmt.Fprintf(&b, "*Equipe %s*", s.storeName)

	return b.String()
}

// Link builds the wa.me deep link for the customer's contact number.
func (s *Service) Link(contact, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", contact, encodeText(text))
}

// encodeText percent-encodes like PHP's rawurlencode: spaces become %20, not +.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
