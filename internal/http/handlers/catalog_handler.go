package handlers

import (
	"github.com/gofiber/fiber/v2"

	"padelmania/internal/catalog"
	applog "padelmania/internal/log"
	"padelmania/internal/money"
	"padelmania/internal/validate"
)

type CatalogHandler struct {
	Data *catalog.Data
}

// List applies the filter/sort query parameters to the static catalog.
// Malformed filter values read as "no filter", never as an error.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	f := catalog.Filter{
		Category: c.Query("category", catalog.CategoryAll),
		MinPrice: validate.PriceBound(c.Query("min_price")),
		MaxPrice: validate.PriceBound(c.Query("max_price")),
		Search:   validate.Q(c.Query("q")),
		Tags:     validate.Tags(c.Query("tags")),
		InStock:  c.QueryBool("in_stock"),
	}
	key := catalog.SortKey(c.Query("sort", string(catalog.SortNewest)))

	list := catalog.SortProducts(catalog.FilterProducts(h.Data.Products, f), key)
	return c.JSON(fiber.Map{
		"products": list,
		"count":    len(list),
	})
}

// Detail returns one product plus up to three in-stock siblings of the
// same category and the discount figures for display.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "catalog.detail.bad_id", map[string]any{"id": c.Params("id")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, ok := h.Data.Find(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(fiber.Map{
		"product":     p,
		"discount":    money.CalculateDiscount(p.Price, p.OldPrice),
		"recommended": catalog.Recommend(h.Data.Products, p.ID, p.Category, 3),
	})
}

// Categories returns the category definitions and the tag vocabulary the
// filter panel offers.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": h.Data.Categories,
		"tags":       h.Data.Tags,
	})
}
