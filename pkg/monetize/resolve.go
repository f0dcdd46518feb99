package monetize

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/monetize/pkg/money"
)

// resolveCurrency determines the effective currency of the attribute for
// the given instance, identically for reads and writes:
//
//  1. a currency carried by the value being assigned — handled at the
//     setter boundary, before this function is reached;
//  2. the instance's own currency column, when present and non-blank;
//  3. the currency registered for the instance's type;
//  4. the attribute's configured currency (WithCurrency);
//  5. the registry default.
//
// Only the first matching tier is consulted. The order is load-bearing:
// changing it silently mis-prices records.
func (d *Descriptor) resolveCurrency(instance reflect.Value) (money.Currency, error) {
	if d.currencyColumn != "" {
		if code, ok := readStringField(instance.FieldByName(d.currencyColumn)); ok && strings.TrimSpace(code) != "" {
			cur, err := money.Lookup(code)
			if err != nil {
				return money.Currency{}, fmt.Errorf("currency column %s: %w", d.currencyColumn, err)
			}
			return cur, nil
		}
	}
	if cur, ok := modelCurrencyFor(instance.Type()); ok {
		return cur, nil
	}
	if !d.withCurrency.IsZero() {
		return d.withCurrency, nil
	}
	return money.Default(), nil
}

// readSubunitField reads an integer or pointer-to-integer field. ok is
// false when the field is a nil pointer, the "no value" state.
func readSubunitField(f reflect.Value) (int64, bool) {
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return 0, false
		}
		f = f.Elem()
	}
	return f.Int(), true
}

// writeSubunitField writes v into an integer or pointer-to-integer field.
// A nil v clears a pointer field; a plain integer field cannot represent
// absence and is zeroed instead.
func writeSubunitField(f reflect.Value, v *int64) {
	if f.Kind() == reflect.Pointer {
		if v == nil {
			f.Set(reflect.Zero(f.Type()))
			return
		}
		p := reflect.New(f.Type().Elem())
		p.Elem().SetInt(*v)
		f.Set(p)
		return
	}
	if v == nil {
		f.SetInt(0)
		return
	}
	f.SetInt(*v)
}

func readStringField(f reflect.Value) (string, bool) {
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return "", false
		}
		f = f.Elem()
	}
	return f.String(), true
}

func writeStringField(f reflect.Value, s string) {
	if f.Kind() == reflect.Pointer {
		p := reflect.New(f.Type().Elem())
		p.Elem().SetString(s)
		f.Set(p)
		return
	}
	f.SetString(s)
}
