package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/monetize/pkg/apperrors"
)

// ParseSubunits converts a raw monetary string into an exact count of c's
// subunits under the given separator rules.
//
// Blank or whitespace-only input is not an error: it yields ok == false,
// the "no value" outcome. The grammar accepts an optional sign, an optional
// occurrence of the currency's symbol, digits grouped by the thousands
// separator, and at most one decimal separator; the thousands separator may
// never appear after the decimal separator. Anything else fails with
// *apperrors.FormatError.
//
// Fraction digits beyond the currency's exponent are rounded to the nearest
// subunit, halves away from zero. The rounding is deterministic and exact
// (no float arithmetic is involved).
func ParseSubunits(raw string, c Currency, r FormatRules) (subunits int64, ok bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}
	if c.Symbol != "" {
		s = strings.TrimSpace(strings.Replace(s, c.Symbol, "", 1))
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if r.DecimalSep != "" && strings.Contains(s, r.DecimalSep) {
		if strings.Count(s, r.DecimalSep) > 1 {
			return 0, false, &apperrors.FormatError{Raw: raw}
		}
		i := strings.Index(s, r.DecimalSep)
		intPart, fracPart = s[:i], s[i+len(r.DecimalSep):]
	}
	if r.ThousandsSep != "" {
		if strings.Contains(fracPart, r.ThousandsSep) {
			return 0, false, &apperrors.FormatError{Raw: raw}
		}
		intPart = strings.ReplaceAll(intPart, r.ThousandsSep, "")
	}
	if intPart == "" && fracPart == "" {
		// separators only
		return 0, false, &apperrors.FormatError{Raw: raw}
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, false, &apperrors.FormatError{Raw: raw}
	}

	if intPart == "" {
		intPart = "0"
	}
	canonical := intPart
	if fracPart != "" {
		canonical += "." + fracPart
	}
	d, derr := decimal.NewFromString(canonical)
	if derr != nil {
		return 0, false, &apperrors.FormatError{Raw: raw}
	}
	if neg {
		d = d.Neg()
	}
	return d.Shift(c.Exponent).Round(0).IntPart(), true, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
