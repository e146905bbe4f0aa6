package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"padelmania/internal/cart"
	"padelmania/internal/catalog"
	"padelmania/internal/chat"
	"padelmania/internal/checkout"
	"padelmania/internal/config"
	"padelmania/internal/http/handlers"
	applog "padelmania/internal/log"
	"padelmania/internal/storage"
)

func main() {
	cfg := config.Load(os.Args[1:])

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	data, err := catalog.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[catalog] %d products, %d categories", len(data.Products), len(data.Categories))

	kv, err := storage.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	eng := cart.New(kv)

	wa := checkout.NewWhatsApp(checkout.DefaultWhatsAppConfig(cfg.WhatsAppNumber))
	var prefs *checkout.PreferenceClient
	if cfg.GatewayURL != "" {
		prefs = checkout.NewPreferenceClient(cfg.GatewayURL)
	}
	bot := chat.New(data.Products)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/healthz")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(data, eng, wa, prefs, bot)

	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Get("/categories", deps.CatalogHandler.Categories)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Put("/cart/items/:id", deps.CartHandler.SetQuantity)
	api.Delete("/cart/items/:id", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)

	api.Post("/checkout/whatsapp", deps.CheckoutHandler.WhatsAppLink)
	api.Post("/checkout/preference", deps.CheckoutHandler.Preference)

	api.Get("/chat/greeting", deps.ChatHandler.Greeting)
	api.Post("/chat", deps.ChatHandler.Message)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(cfg.Addr))
}
