package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/SscSPs/monetize/pkg/apperrors"
)

// The registry is process-wide. It is seeded with the built-in ISO table at
// init and may be extended with Register at configuration time. The default
// currency and active locale are single mutable slots: last writer wins, no
// locking is provided, and mutating them while other goroutines read is
// unsupported. Configure once at startup.
var (
	byCode   = map[string]Currency{}
	bySymbol = map[string]Currency{}

	defaultCurrency Currency
	activeLocale    = language.English
)

func init() {
	for _, c := range builtinCurrencies {
		mustRegister(c)
	}
	defaultCurrency = byCode["USD"]
}

// Lookup finds a currency by alphabetic code (case-insensitive) or by its
// symbol. It fails with apperrors.ErrUnknownCurrency on a miss.
func Lookup(codeOrSymbol string) (Currency, error) {
	key := strings.TrimSpace(codeOrSymbol)
	if c, ok := byCode[strings.ToUpper(key)]; ok {
		return c, nil
	}
	if c, ok := bySymbol[key]; ok {
		return c, nil
	}
	return Currency{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, codeOrSymbol)
}

// MustLookup is like Lookup but panics on a miss. It simplifies init-time
// declarations of well-known currencies.
func MustLookup(code string) Currency {
	c, err := Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("money: Lookup(%q) failed: %v", code, err))
	}
	return c
}

// Register adds a currency to the registry, replacing any existing entry
// with the same code. Call at configuration time only.
func Register(c Currency) error {
	if c.Code == "" {
		return fmt.Errorf("money: cannot register a currency without a code")
	}
	if c.Exponent < 0 {
		return fmt.Errorf("money: currency %s has negative exponent %d", c.Code, c.Exponent)
	}
	c.Code = strings.ToUpper(c.Code)
	byCode[c.Code] = c
	if c.Symbol != "" {
		if _, taken := bySymbol[c.Symbol]; !taken {
			bySymbol[c.Symbol] = c
		}
	}
	return nil
}

func mustRegister(c Currency) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

// Default returns the process-wide default currency (the lowest tier of
// currency resolution).
func Default() Currency {
	return defaultCurrency
}

// SetDefault replaces the process-wide default currency.
func SetDefault(c Currency) {
	defaultCurrency = c
}

// ActiveLocale returns the locale used for parsing monetary strings.
func ActiveLocale() language.Tag {
	return activeLocale
}

// SetActiveLocale replaces the active locale.
func SetActiveLocale(tag language.Tag) {
	activeLocale = tag
}
