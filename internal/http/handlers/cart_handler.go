package handlers

import (
	"github.com/gofiber/fiber/v2"

	"padelmania/internal/cart"
	"padelmania/internal/catalog"
	applog "padelmania/internal/log"
	"padelmania/internal/money"
	"padelmania/internal/validate"
)

type CartHandler struct {
	Data *catalog.Data
	Cart *cart.Engine
}

func (h *CartHandler) view(c *fiber.Ctx) error {
	items := h.Cart.Items()
	total := h.Cart.Total()
	return c.JSON(fiber.Map{
		"items":          items,
		"itemCount":      h.Cart.ItemCount(),
		"total":          total,
		"formattedTotal": money.FormatCurrency(total),
		"installments":   money.CalculateInstallments(total, 6),
	})
}

func (h *CartHandler) View(c *fiber.Ctx) error { return h.view(c) }

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Add looks the product up at call time and hands the snapshot to the
// engine. Stock gating is a UI concern; the engine accepts the add.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, ok := h.Data.Find(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	qty := validate.Qty(req.Quantity)
	h.Cart.Add(p, qty)
	applog.Info(c, "cart.add", map[string]any{"product_id": p.ID, "qty": qty})
	return h.view(c)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity updates an existing line; zero or less removes it. An
// absent id is a no-op, mirrored straight through from the engine.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	h.Cart.SetQuantity(id, req.Quantity)
	applog.Info(c, "cart.set_quantity", map[string]any{"product_id": id, "qty": req.Quantity})
	return h.view(c)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.Cart.Remove(id)
	applog.Info(c, "cart.remove", map[string]any{"product_id": id})
	return h.view(c)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear()
	applog.Info(c, "cart.clear", nil)
	return h.view(c)
}
