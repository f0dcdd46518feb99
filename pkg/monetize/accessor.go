package monetize

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/monetize/pkg/apperrors"
	"github.com/SscSPs/monetize/pkg/money"
)

// Get reads the monetized attribute from the instance. A null subunit
// column yields (nil, nil): no Money value exists. Otherwise the currency
// is resolved and a Money is constructed around the stored subunit count.
func Get(instance any, attr string) (*money.Money, error) {
	v, d, _, err := bind(instance, attr)
	if err != nil {
		return nil, err
	}
	return d.get(v)
}

// Set writes a raw value to the monetized attribute. The raw input is kept
// verbatim in the before-coercion shadow until the next validation pass.
// Blank or nil input writes null to the subunit column. An already-typed
// Money carries its own currency, which is also written to the instance
// currency column when one exists. Coercion failures never surface here:
// the column is left unmodified and the validation pass reports them.
//
// Set returns an error only for caller mistakes (unknown attribute, bad
// instance), never for unparseable values.
func Set(instance any, attr string, raw any) error {
	v, d, sc, err := bind(instance, attr)
	if err != nil {
		return err
	}
	d.set(v, sc, raw)
	return nil
}

// BeforeTypeCast returns the last raw value passed to Set for the
// attribute, or (nil, nil) if none is held. It is reset by every
// validation pass.
func BeforeTypeCast(instance any, attr string) (any, error) {
	_, d, sc, err := bind(instance, attr)
	if err != nil {
		return nil, err
	}
	if e, ok := sc.shadowFor(d.accessor); ok {
		return e.raw, nil
	}
	return nil, nil
}

// CurrencyString returns the code of the currency currently resolved for
// the attribute on this instance.
func CurrencyString(instance any, attr string) (string, error) {
	v, d, _, err := bind(instance, attr)
	if err != nil {
		return "", err
	}
	cur, err := d.resolveCurrency(v)
	if err != nil {
		return "", err
	}
	return cur.Code, nil
}

// Get is the descriptor-level getter; instance must be a pointer to the
// owner type (or a type embedding it).
func (d *Descriptor) Get(instance any) (*money.Money, error) {
	v, _, err := instanceValue(instance)
	if err != nil {
		return nil, err
	}
	return d.get(v)
}

// Set is the descriptor-level setter.
func (d *Descriptor) Set(instance any, raw any) error {
	v, sc, err := instanceValue(instance)
	if err != nil {
		return err
	}
	d.set(v, sc, raw)
	return nil
}

func (d *Descriptor) get(v reflect.Value) (*money.Money, error) {
	sub, present := readSubunitField(v.FieldByName(d.column))
	if !present {
		return nil, nil
	}
	cur, err := d.resolveCurrency(v)
	if err != nil {
		return nil, err
	}
	m := money.New(sub, cur)
	return &m, nil
}

func (d *Descriptor) set(v reflect.Value, sc shadowCarrier, raw any) {
	field := v.FieldByName(d.column)

	in, ok := coerce(raw)
	if !ok {
		// unsupported type: shadow it, leave the column alone
		sc.setShadow(d.accessor, shadowEntry{raw: raw, failed: true})
		return
	}

	switch in.kind {
	case inputAbsent:
		sc.setShadow(d.accessor, shadowEntry{raw: raw})
		writeSubunitField(field, nil)

	case inputMoney:
		sc.setShadow(d.accessor, shadowEntry{raw: raw})
		sub := in.mny.Subunits()
		writeSubunitField(field, &sub)
		if d.currencyColumn != "" {
			writeStringField(v.FieldByName(d.currencyColumn), in.mny.Currency().Code)
		}

	case inputNumber:
		cur, err := d.resolveCurrency(v)
		if err != nil {
			sc.setShadow(d.accessor, shadowEntry{raw: raw, failed: true})
			return
		}
		sc.setShadow(d.accessor, shadowEntry{raw: raw})
		sub := in.num.Shift(cur.Exponent).Round(0).IntPart()
		writeSubunitField(field, &sub)

	case inputText:
		cur, err := d.resolveCurrency(v)
		if err != nil {
			sc.setShadow(d.accessor, shadowEntry{raw: raw, failed: true})
			return
		}
		rules := money.Rules(cur, money.ActiveLocale())
		sub, present, err := money.ParseSubunits(in.text, cur, rules)
		if err != nil || !present {
			sc.setShadow(d.accessor, shadowEntry{raw: raw, failed: err != nil})
			return
		}
		sc.setShadow(d.accessor, shadowEntry{raw: raw})
		writeSubunitField(field, &sub)
	}
}

// bind resolves the instance and the attribute's descriptor in one step.
func bind(instance any, attr string) (reflect.Value, *Descriptor, shadowCarrier, error) {
	v, sc, err := instanceValue(instance)
	if err != nil {
		return reflect.Value{}, nil, nil, err
	}
	d, ok := descriptorSetFor(v.Type())[attr]
	if !ok {
		return reflect.Value{}, nil, nil, fmt.Errorf("%w: %s on %s", apperrors.ErrUnknownAttribute, attr, v.Type().Name())
	}
	return v, d, sc, nil
}

func instanceValue(instance any) (reflect.Value, shadowCarrier, error) {
	sc, ok := instance.(shadowCarrier)
	if !ok {
		return reflect.Value{}, nil, fmt.Errorf("%w: must embed monetize.Record and be passed by pointer", apperrors.ErrInvalidInstance)
	}
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, nil, fmt.Errorf("%w: want a non-nil struct pointer, got %T", apperrors.ErrInvalidInstance, instance)
	}
	ev := rv.Elem()
	if ev.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("%w: want a struct pointer, got %T", apperrors.ErrInvalidInstance, instance)
	}
	return ev, sc, nil
}
