package monetize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/monetize/pkg/money"
)

// inputKind tags the coerced form of a raw setter argument.
type inputKind int

const (
	inputAbsent inputKind = iota // nil, blank or whitespace-only
	inputMoney                   // already-typed, carries its own currency
	inputNumber                  // exact decimal value in whole units
	inputText                    // needs locale-aware parsing
)

// input is the sum type the setter matches on. Exactly one of mny, num and
// text is meaningful, selected by kind.
type input struct {
	kind inputKind
	mny  money.Money
	num  decimal.Decimal
	text string
}

// coerce maps an arbitrary setter argument onto the input union. The
// second return is false when the Go type is not a supported monetary
// input; the setter records that as a coercion failure for validation to
// report, it never returns it.
func coerce(raw any) (input, bool) {
	switch v := raw.(type) {
	case nil:
		return input{kind: inputAbsent}, true
	case money.Money:
		return input{kind: inputMoney, mny: v}, true
	case *money.Money:
		if v == nil {
			return input{kind: inputAbsent}, true
		}
		return input{kind: inputMoney, mny: *v}, true
	case string:
		if strings.TrimSpace(v) == "" {
			return input{kind: inputAbsent}, true
		}
		return input{kind: inputText, text: v}, true
	case *string:
		if v == nil {
			return input{kind: inputAbsent}, true
		}
		return coerce(*v)
	case decimal.Decimal:
		return input{kind: inputNumber, num: v}, true
	case int:
		return input{kind: inputNumber, num: decimal.NewFromInt(int64(v))}, true
	case int8:
		return input{kind: inputNumber, num: decimal.NewFromInt(int64(v))}, true
	case int16:
		return input{kind: inputNumber, num: decimal.NewFromInt(int64(v))}, true
	case int32:
		return input{kind: inputNumber, num: decimal.NewFromInt(int64(v))}, true
	case int64:
		return input{kind: inputNumber, num: decimal.NewFromInt(v)}, true
	case uint:
		return input{kind: inputNumber, num: decimal.NewFromUint64(uint64(v))}, true
	case uint8:
		return input{kind: inputNumber, num: decimal.NewFromUint64(uint64(v))}, true
	case uint16:
		return input{kind: inputNumber, num: decimal.NewFromUint64(uint64(v))}, true
	case uint32:
		return input{kind: inputNumber, num: decimal.NewFromUint64(uint64(v))}, true
	case uint64:
		return input{kind: inputNumber, num: decimal.NewFromUint64(v)}, true
	case float32:
		return input{kind: inputNumber, num: decimal.NewFromFloat32(v)}, true
	case float64:
		return input{kind: inputNumber, num: decimal.NewFromFloat(v)}, true
	default:
		return input{}, false
	}
}
