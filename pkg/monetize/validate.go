package monetize

import (
	"fmt"
	"reflect"
	"sort"
)

// DefaultMessage is reported for a non-numeric or malformed monetary input.
// A Numericality.Message override replaces it for every failure cause of
// the attribute.
const DefaultMessage = "must be a valid amount"

// Violation is a single validation failure against a public attribute name.
type Violation struct {
	Attribute string
	Message   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s", v.Attribute, v.Message)
}

// Validate runs the numericality rule of every monetized attribute of the
// instance and returns the collected violations, in attribute order. An
// empty result means the instance is valid.
//
// As its unconditional last step, pass or fail, Validate resets every
// before-coercion shadow on the instance; a failed pass can therefore
// redisplay the originally typed values from the violations it returned,
// but a subsequent pass starts clean.
func Validate(instance any) ([]Violation, error) {
	v, sc, err := instanceValue(instance)
	if err != nil {
		return nil, err
	}
	defer sc.clearShadows()

	set := descriptorSetFor(v.Type())
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Violation
	for _, name := range names {
		out = append(out, set[name].check(v, sc)...)
	}
	return out, nil
}

// ClearShadows resets every before-coercion shadow on the instance. It is
// the hook for callers running their own validation orchestration; Validate
// already invokes it.
func ClearShadows(instance any) error {
	_, sc, err := instanceValue(instance)
	if err != nil {
		return err
	}
	sc.clearShadows()
	return nil
}

func (d *Descriptor) check(v reflect.Value, sc shadowCarrier) []Violation {
	message := d.num.Message

	fail := func(def string) []Violation {
		msg := message
		if msg == "" {
			msg = def
		}
		return []Violation{{Attribute: d.accessor, Message: msg}}
	}

	if e, ok := sc.shadowFor(d.accessor); ok && e.failed {
		return fail(DefaultMessage)
	}

	sub, present := readSubunitField(v.FieldByName(d.column))
	if !present {
		if d.allowNil {
			return nil
		}
		return fail(DefaultMessage)
	}

	if d.num.GreaterThan != nil && !(sub > *d.num.GreaterThan) {
		return fail(fmt.Sprintf("must be greater than %d", *d.num.GreaterThan))
	}
	if d.num.GreaterThanOrEqual != nil && !(sub >= *d.num.GreaterThanOrEqual) {
		return fail(fmt.Sprintf("must be greater than or equal to %d", *d.num.GreaterThanOrEqual))
	}
	if d.num.LessThan != nil && !(sub < *d.num.LessThan) {
		return fail(fmt.Sprintf("must be less than %d", *d.num.LessThan))
	}
	if d.num.LessThanOrEqual != nil && !(sub <= *d.num.LessThanOrEqual) {
		return fail(fmt.Sprintf("must be less than or equal to %d", *d.num.LessThanOrEqual))
	}
	return nil
}
