// Package money provides the currency registry and the immutable Money
// value used by the monetize attribute layer. The registry is read-mostly:
// custom currencies, the default currency and the active locale are meant
// to be installed once at startup, before concurrent use begins.
package money

import (
	"database/sql/driver"
	"fmt"
)

// Currency describes a currency known to the registry.
// Values are immutable; records never create currencies, they look them up.
type Currency struct {
	Code         string // ISO 4217 alphabetic code, e.g. "USD"
	Symbol       string // e.g. "$"
	Exponent     int32  // subunit-to-unit exponent, e.g. 2 for cents
	DecimalSep   string // the currency's native decimal separator
	ThousandsSep string // the currency's native thousands separator
}

// IsZero reports whether c is the zero Currency (no code).
func (c Currency) IsZero() bool {
	return c.Code == ""
}

// String implements fmt.Stringer and returns the alphabetic code.
func (c Currency) String() string {
	return c.Code
}

// MarshalText implements encoding.TextMarshaler, emitting the code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via a registry lookup.
func (c *Currency) UnmarshalText(text []byte) error {
	cur, err := Lookup(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling currency: %w", err)
	}
	*c = cur
	return nil
}

// Value implements driver.Valuer. Currencies persist as their code.
func (c Currency) Value() (driver.Value, error) {
	return c.Code, nil
}

// Scan implements sql.Scanner, accepting the code as string or []byte.
func (c *Currency) Scan(src any) error {
	var code string
	switch v := src.(type) {
	case string:
		code = v
	case []byte:
		code = string(v)
	default:
		return fmt.Errorf("scanning currency: unsupported type %T", src)
	}
	cur, err := Lookup(code)
	if err != nil {
		return fmt.Errorf("scanning currency %q: %w", code, err)
	}
	*c = cur
	return nil
}
