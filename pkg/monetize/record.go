// Package monetize exposes integer subunit columns of plain record structs
// as rich monetary values. Attributes are declared once per owner type with
// Define, then read and written at runtime through Get/Set, with currency
// resolution, exact coercion of raw input, and validation integration.
//
// Declaration-time state (descriptor sets, model-registered currencies) is
// meant to be written before concurrent use begins and read thereafter;
// this package provides no locking for it.
package monetize

// Record carries the per-instance state of the monetary attribute layer:
// the before-coercion shadow values kept for validation re-display. Embed
// it by value into any struct that declares monetized attributes; the zero
// value is ready to use. Shadows are never persisted.
type Record struct {
	shadows map[string]shadowEntry
}

type shadowEntry struct {
	raw    any
	failed bool // input did not coerce; validation reports it
}

func (r *Record) setShadow(attr string, e shadowEntry) {
	if r.shadows == nil {
		r.shadows = make(map[string]shadowEntry)
	}
	r.shadows[attr] = e
}

func (r *Record) shadowFor(attr string) (shadowEntry, bool) {
	e, ok := r.shadows[attr]
	return e, ok
}

func (r *Record) clearShadows() {
	r.shadows = nil
}

// shadowCarrier is satisfied by a pointer to any struct embedding Record.
type shadowCarrier interface {
	setShadow(attr string, e shadowEntry)
	shadowFor(attr string) (shadowEntry, bool)
	clearShadows()
}
