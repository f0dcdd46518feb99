// Command monetize-demo declares a monetized record type and runs a raw
// amount from the command line through the attribute layer: coercion,
// currency resolution and validation.
//
//	MONETIZE_DEFAULT_CURRENCY=EUR MONETIZE_LOCALE=de monetize-demo "1.234,56"
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/monetize/pkg/config"
	"github.com/SscSPs/monetize/pkg/monetize"
)

// Invoice is a sample record: an integer subunit column, an optional
// row-level currency column, and the embedded shadow storage.
type Invoice struct {
	monetize.Record

	ID         string
	TotalCents *int64
	Currency   string
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Apply(); err != nil {
		logger.Error("Failed to apply config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if _, err := monetize.Define(Invoice{}, "TotalCents", monetize.Options{}); err != nil {
		logger.Error("Failed to define attribute", slog.String("error", err.Error()))
		os.Exit(1)
	}

	raw := "42"
	if len(os.Args) > 1 {
		raw = strings.Join(os.Args[1:], " ")
	}

	inv := &Invoice{ID: uuid.NewString()}
	if err := monetize.Set(inv, "Total", raw); err != nil {
		logger.Error("Failed to set attribute", slog.String("error", err.Error()))
		os.Exit(1)
	}

	violations, err := monetize.Validate(inv)
	if err != nil {
		logger.Error("Validation could not run", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(violations) > 0 {
		for _, v := range violations {
			logger.Warn("Invalid input",
				slog.String("invoice_id", inv.ID),
				slog.String("attribute", v.Attribute),
				slog.String("message", v.Message),
				slog.String("raw", raw))
		}
		os.Exit(1)
	}

	total, err := monetize.Get(inv, "Total")
	if err != nil {
		logger.Error("Failed to read attribute", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Parsed amount",
		slog.String("invoice_id", inv.ID),
		slog.Int64("subunits", total.Subunits()),
		slog.String("currency", total.Currency().Code),
		slog.String("money", total.String()))
}
