package handlers

import (
	"padelmania/internal/cart"
	"padelmania/internal/catalog"
	"padelmania/internal/chat"
	"padelmania/internal/checkout"
)

// Deps bundles the constructed handlers the router wires up.
type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ChatHandler     *ChatHandler
}

func NewDeps(data *catalog.Data, eng *cart.Engine, wa *checkout.WhatsApp, prefs *checkout.PreferenceClient, bot *chat.Bot) *Deps {
	return &Deps{
		CatalogHandler:  &CatalogHandler{Data: data},
		CartHandler:     &CartHandler{Data: data, Cart: eng},
		CheckoutHandler: &CheckoutHandler{Cart: eng, WhatsApp: wa, Prefs: prefs},
		ChatHandler:     &ChatHandler{Bot: bot},
	}
}
