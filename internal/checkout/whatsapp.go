package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"padelmania/internal/domain"
	"padelmania/internal/money"
)

// FreeShippingThreshold is the cart total from which shipping is free.
const FreeShippingThreshold = 50000

// WhatsAppConfig mirrors the storefront's WhatsApp settings: the target
// number in international digits-only form plus the message trimmings.
type WhatsAppConfig struct {
	Number           string
	EmptyCartMessage string
	IncludeShipping  bool
	FooterText       string
}

func DefaultWhatsAppConfig(number string) WhatsAppConfig {
	return WhatsAppConfig{
		Number:           number,
		EmptyCartMessage: "Hola, quisiera hacer una consulta sobre los productos.",
		IncludeShipping:  true,
		FooterText:       "Quisiera coordinar el pago por transferencia. ¡Gracias!",
	}
}

// WhatsApp composes pre-filled order messages and wa.me deep links from
// cart contents. It only ever sees plain line-item data.
type WhatsApp struct {
	cfg WhatsAppConfig
}

func NewWhatsApp(cfg WhatsAppConfig) *WhatsApp { return &WhatsApp{cfg: cfg} }

// ComposeMessage renders the order summary for items and total. An empty
// cart falls back to the configured enquiry message.
func (w *WhatsApp) ComposeMessage(items []domain.CartItem, total int) string {
	if len(items) == 0 {
		return w.cfg.EmptyCartMessage
	}
	var b strings.Builder
	b.WriteString("¡Hola! Quiero hacer un pedido:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "• %s x%d - %s\n", it.Title, it.Quantity, money.FormatCurrency(it.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", money.FormatCurrency(total))
	if w.cfg.IncludeShipping {
		if total >= FreeShippingThreshold {
			b.WriteString("Envío: GRATIS\n")
		} else {
			b.WriteString("Envío: a coordinar\n")
		}
	}
	if w.cfg.FooterText != "" {
		b.WriteString("\n" + w.cfg.FooterText)
	}
	return b.String()
}

// Link builds the wa.me deep link carrying the composed message.
func (w *WhatsApp) Link(items []domain.CartItem, total int) string {
	msg := w.ComposeMessage(items, total)
	return "https://wa.me/" + w.cfg.Number + "?text=" + url.QueryEscape(msg)
}
