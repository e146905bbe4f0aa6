package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"padelmania/internal/cart"
	"padelmania/internal/checkout"
	applog "padelmania/internal/log"
)

type CheckoutHandler struct {
	Cart     *cart.Engine
	WhatsApp *checkout.WhatsApp
	// Prefs is nil when no gateway is configured; Preference then answers
	// with the demo redirect the storefront ships with.
	Prefs *checkout.PreferenceClient
}

// WhatsAppLink hands the cart contents off as a pre-filled chat deep
// link. An empty cart still yields a link, carrying the enquiry message.
func (h *CheckoutHandler) WhatsAppLink(c *fiber.Ctx) error {
	items := h.Cart.Items()
	total := h.Cart.Total()
	applog.Audit(c, "checkout.whatsapp", map[string]any{"items": len(items), "total": total})
	return c.JSON(fiber.Map{
		"message": h.WhatsApp.ComposeMessage(items, total),
		"link":    h.WhatsApp.Link(items, total),
	})
}

// Preference forwards {items,total} to the payment gateway and relays
// the opaque redirect target.
func (h *CheckoutHandler) Preference(c *fiber.Ctx) error {
	items := checkout.PreferenceItems(h.Cart.Items())
	total := h.Cart.Total()

	if h.Prefs == nil {
		if len(items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
		}
		applog.Audit(c, "checkout.preference.demo", map[string]any{"total": total})
		return c.JSON(checkout.Preference{
			ID:        "demo-" + uuid.NewString(),
			InitPoint: "https://www.mercadopago.com/checkout/demo",
		})
	}

	pref, err := h.Prefs.Create(c.Context(), items, total)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrInvalidTotal):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		applog.Error(c, "checkout.preference", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "payment gateway unavailable"})
	}
	applog.Audit(c, "checkout.preference", map[string]any{"preference_id": pref.ID, "total": total})
	return c.JSON(pref)
}
