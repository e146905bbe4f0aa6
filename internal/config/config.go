package config

import (
	"log"
	"os"

	"github.com/spf13/pflag"
)

type Config struct {
	Addr           string
	DBDSN          string
	LogFile        string
	WhatsAppNumber string
	GatewayURL     string
}

// Load reads configuration from environment variables with command-line
// flags layered on top. Flags win over env vars, env vars over defaults.
func Load(args []string) Config {
	fs := pflag.NewFlagSet("padelmania", pflag.ExitOnError)
	addr := fs.String("addr", envOr("ADDR", ":8081"), "listen address")
	dsn := fs.String("db-dsn", envOr("DB_DSN", "padelmania.db"), "sqlite dsn for the cart store")
	logFile := fs.String("log-file", envOr("LOG_FILE", "./padelmania.log"), "log sink, empty disables file logging")
	wa := fs.String("whatsapp-number", envOr("WHATSAPP_NUMBER", "5491234567890"), "checkout whatsapp number, digits only")
	gw := fs.String("gateway-url", envOr("GATEWAY_URL", ""), "payment preference endpoint base url, empty uses the demo checkout")
	_ = fs.Parse(args)

	cfg := Config{
		Addr:           *addr,
		DBDSN:          *dsn,
		LogFile:        *logFile,
		WhatsAppNumber: *wa,
		GatewayURL:     *gw,
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s LOG_FILE=%s GATEWAY_URL=%s", cfg.Addr, cfg.DBDSN, cfg.LogFile, cfg.GatewayURL)
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
