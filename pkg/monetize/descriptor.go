package monetize

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/monetize/pkg/apperrors"
	"github.com/SscSPs/monetize/pkg/money"
)

// Options configures a monetized attribute at declaration time.
type Options struct {
	// As overrides the accessor name derived from the subunit column
	// (the default strips a trailing "Cents" or "_cents").
	As string `validate:"omitempty,min=1"`
	// WithCurrency pins the attribute to a currency code. It sits below the
	// instance currency column and the model-registered currency in the
	// resolution order.
	WithCurrency string `validate:"omitempty,alpha,len=3"`
	// CurrencyColumn names the string field holding the instance's own
	// currency code, the highest read-side resolution tier. When empty, a
	// field named "Currency" is used if the owner has one.
	CurrencyColumn string
	// AllowNil accepts a null subunit column as valid.
	AllowNil bool
	// Numericality overrides the default numericality rule.
	Numericality *Numericality
	// Override permits redefining an accessor that already exists on the
	// owner (or is inherited from an embedded type).
	Override bool
}

// Numericality bounds apply to the subunit column value. Message, when set,
// replaces the default message for every failure cause of the attribute,
// format failures included.
type Numericality struct {
	GreaterThan        *int64
	GreaterThanOrEqual *int64
	LessThan           *int64
	LessThanOrEqual    *int64
	Message            string
}

// Descriptor is the immutable per-attribute configuration built by Define.
// One exists per monetized attribute per owner type, for the life of the
// process.
type Descriptor struct {
	owner          reflect.Type // struct type of the owner
	column         string       // subunit field name
	accessor       string       // derived public name
	currencyColumn string       // "" when the owner has no instance currency field
	withCurrency   money.Currency
	allowNil       bool
	num            Numericality
}

// Accessor returns the public attribute name.
func (d *Descriptor) Accessor() string { return d.accessor }

// Column returns the backing subunit field name.
func (d *Descriptor) Column() string { return d.column }

var (
	descriptors     = map[reflect.Type]map[string]*Descriptor{}
	modelCurrencies = map[reflect.Type]money.Currency{}

	optionsValidate = validator.New()

	shadowCarrierType = reflect.TypeOf((*shadowCarrier)(nil)).Elem()
)

// Define declares a monetized attribute on the owner type, backed by the
// named integer subunit field, and registers the resulting descriptor for
// the owner and its embedding types. The owner is passed as a value or
// pointer of the record struct; only its type is consulted.
//
// Configuration problems (missing or non-integer column, colliding
// accessor, unknown currency code, missing Record embed) fail with
// *apperrors.ConfigurationError.
func Define(owner any, subunitColumn string, opts Options) (*Descriptor, error) {
	t, err := ownerType(owner)
	if err != nil {
		return nil, err
	}
	confErr := func(column, reason string) error {
		return &apperrors.ConfigurationError{Owner: t.Name(), Column: column, Reason: reason}
	}

	if err := optionsValidate.Struct(opts); err != nil {
		return nil, confErr(subunitColumn, fmt.Sprintf("invalid options: %v", err))
	}
	if !reflect.PointerTo(t).Implements(shadowCarrierType) {
		return nil, confErr(subunitColumn, "owner must embed monetize.Record")
	}

	field, ok := t.FieldByName(subunitColumn)
	if !ok {
		return nil, confErr(subunitColumn, "no such field")
	}
	if !integerField(field.Type) {
		return nil, confErr(subunitColumn, fmt.Sprintf("field is %s, want an integer kind or pointer to one", field.Type))
	}

	accessor := opts.As
	if accessor == "" {
		accessor = deriveAccessor(subunitColumn)
	}

	currencyColumn, err := resolveCurrencyColumn(t, opts.CurrencyColumn, confErr)
	if err != nil {
		return nil, err
	}

	var withCurrency money.Currency
	if opts.WithCurrency != "" {
		withCurrency, err = money.Lookup(opts.WithCurrency)
		if err != nil {
			return nil, confErr(subunitColumn, fmt.Sprintf("WithCurrency: %v", err))
		}
	}

	for _, d := range descriptors[t] {
		if d.column == subunitColumn {
			return nil, confErr(subunitColumn, "column already monetized")
		}
	}
	if !opts.Override {
		if _, exists := descriptorSetFor(t)[accessor]; exists {
			return nil, confErr(accessor, "accessor already defined (set Override to shadow it)")
		}
		if _, exists := t.FieldByName(accessor); exists {
			return nil, confErr(accessor, "accessor collides with an existing field")
		}
	}

	d := &Descriptor{
		owner:          t,
		column:         subunitColumn,
		accessor:       accessor,
		currencyColumn: currencyColumn,
		withCurrency:   withCurrency,
		allowNil:       opts.AllowNil,
	}
	if opts.Numericality != nil {
		d.num = *opts.Numericality
	}

	set := descriptors[t]
	if set == nil {
		set = map[string]*Descriptor{}
		descriptors[t] = set
	}
	set[accessor] = d
	return d, nil
}

// MustDefine is like Define but panics, for init-time declarations.
func MustDefine(owner any, subunitColumn string, opts Options) *Descriptor {
	d, err := Define(owner, subunitColumn, opts)
	if err != nil {
		panic(err)
	}
	return d
}

// RegisterModelCurrency binds a currency to the owner type, applying to all
// of its monetized attributes unless an instance currency column overrides
// it. At most one currency is held per type; the last registration wins.
// Registering the zero Currency clears the binding.
func RegisterModelCurrency(owner any, c money.Currency) error {
	t, err := ownerType(owner)
	if err != nil {
		return err
	}
	modelCurrencies[t] = c
	return nil
}

// resolveCurrencyColumn validates the tier-2 source. Configuring a column
// different from an existing conventional "Currency" field is rejected at
// declaration time rather than arbitrated at runtime.
func resolveCurrencyColumn(t reflect.Type, configured string, confErr func(column, reason string) error) (string, error) {
	conventional := ""
	if f, ok := t.FieldByName("Currency"); ok && stringField(f.Type) {
		conventional = "Currency"
	}
	if configured == "" {
		return conventional, nil
	}
	f, ok := t.FieldByName(configured)
	if !ok {
		return "", confErr(configured, "currency column: no such field")
	}
	if !stringField(f.Type) {
		return "", confErr(configured, fmt.Sprintf("currency column is %s, want string or *string", f.Type))
	}
	if conventional != "" && configured != conventional {
		return "", confErr(configured, "ambiguous instance currency source: owner already has a Currency field")
	}
	return configured, nil
}

// deriveAccessor strips the subunit suffix from the column name, so
// "PriceCents" becomes "Price". A column without the suffix keeps its name.
func deriveAccessor(column string) string {
	for _, suffix := range []string{"Cents", "_cents", "Subunits", "_subunits"} {
		if trimmed := strings.TrimSuffix(column, suffix); trimmed != column && trimmed != "" {
			return trimmed
		}
	}
	return column
}

func ownerType(owner any) (reflect.Type, error) {
	t := reflect.TypeOf(owner)
	if t == nil {
		return nil, fmt.Errorf("%w: nil owner", apperrors.ErrInvalidInstance)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", apperrors.ErrInvalidInstance, t)
	}
	return t, nil
}

func integerField(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func stringField(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}

// descriptorSetFor merges the descriptors of t with those of its embedded
// struct types, nearest declaration winning per accessor name. Embedded
// ("ancestor") descriptors apply because their fields are promoted onto t.
func descriptorSetFor(t reflect.Type) map[string]*Descriptor {
	out := map[string]*Descriptor{}
	var walk func(reflect.Type)
	walk = func(st reflect.Type) {
		if st.Kind() != reflect.Struct {
			return
		}
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			if !f.Anonymous {
				continue
			}
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			walk(ft)
		}
		for name, d := range descriptors[st] {
			out[name] = d
		}
	}
	walk(t)
	return out
}

// modelCurrencyFor finds the registered currency for t, falling back to
// embedded types, nearest registration winning.
func modelCurrencyFor(t reflect.Type) (money.Currency, bool) {
	if c, ok := modelCurrencies[t]; ok && !c.IsZero() {
		return c, true
	}
	if t.Kind() != reflect.Struct {
		return money.Currency{}, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if c, ok := modelCurrencyFor(ft); ok {
			return c, true
		}
	}
	return money.Currency{}, false
}
