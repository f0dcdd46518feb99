// Package config loads the monetize runtime configuration from the
// environment and installs it into the process-wide registry slots.
package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/SscSPs/monetize/pkg/money"
)

// CurrencyConfig describes a custom currency registered at startup.
type CurrencyConfig struct {
	Code         string `json:"code"`
	Symbol       string `json:"symbol"`
	Exponent     int32  `json:"exponent"`
	DecimalSep   string `json:"decimalSep"`
	ThousandsSep string `json:"thousandsSep"`
}

// Config holds the monetize configuration.
type Config struct {
	DefaultCurrency string
	Locale          string
	ExtraCurrencies []CurrencyConfig
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONETIZE_DEFAULT_CURRENCY", "USD")
	viper.SetDefault("MONETIZE_LOCALE", "en")
	viper.SetDefault("MONETIZE_EXTRA_CURRENCIES", "")
	viper.AutomaticEnv()

	cfg := &Config{
		DefaultCurrency: viper.GetString("MONETIZE_DEFAULT_CURRENCY"),
		Locale:          viper.GetString("MONETIZE_LOCALE"),
	}

	if raw := viper.GetString("MONETIZE_EXTRA_CURRENCIES"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.ExtraCurrencies); err != nil {
			return nil, fmt.Errorf("parsing MONETIZE_EXTRA_CURRENCIES: %w", err)
		}
	}
	if cfg.DefaultCurrency == "" {
		log.Println("Warning: MONETIZE_DEFAULT_CURRENCY is empty. Defaulting to USD.")
		cfg.DefaultCurrency = "USD"
	}
	return cfg, nil
}

// Apply registers the extra currencies and installs the default currency
// and active locale. Call once at startup, before any concurrent use of the
// registry.
func (c *Config) Apply() error {
	for _, cc := range c.ExtraCurrencies {
		err := money.Register(money.Currency{
			Code:         cc.Code,
			Symbol:       cc.Symbol,
			Exponent:     cc.Exponent,
			DecimalSep:   cc.DecimalSep,
			ThousandsSep: cc.ThousandsSep,
		})
		if err != nil {
			return fmt.Errorf("registering currency %q: %w", cc.Code, err)
		}
	}

	cur, err := money.Lookup(c.DefaultCurrency)
	if err != nil {
		return fmt.Errorf("default currency: %w", err)
	}
	money.SetDefault(cur)

	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("parsing locale %q: %w", c.Locale, err)
	}
	money.SetActiveLocale(tag)
	return nil
}
