// Package formstatex is a minimal form-state container for UI view layers.
//
// A FormState owns a flat bag of named field values, an optional list of
// validator functions per field, and the derived error/flag surface a form
// renderer needs: per-field errors, an aggregate invalid flag, and the
// dirty/touched booleans. Every transition re-runs validation, so Errors and
// Invalid are never stale.
//
// The engine is generic over the error representation R; the boolean
// instantiation (Form) is the shipped variant. A non-zero R denotes an error.
package formstatex

// Values is a flat field-name-to-value bag. The field set is fixed at
// construction; transitions replace per-field contents, never the shape.
type Values map[string]any

// Validator is a pure function from a field value to an error representation.
// A non-zero result denotes an error.
type Validator[R comparable] func(value any) R

// Validators maps a field name to its ordered validator list. Fields without
// an entry always validate clean.
type Validators[R comparable] map[string][]Validator[R]

// Canceler is the capability surface of a cancelable UI event, satisfied by
// adapters from whatever host event system is in use.
type Canceler interface {
	PreventDefault()
}

// Boolean variant (the sole shipped instantiation).
type (
	BoolValidator  = Validator[bool]
	BoolValidators = Validators[bool]
	Form           = FormState[bool]
)

// InvalidArgumentError is the only error kind raised by this package. It is
// reported synchronously to the direct caller; there is no internal recovery.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string { return e.msg }

var (
	// ErrBadValues rejects a nil values bag at construction, and a nil
	// partial passed to Set or Next.
	ErrBadValues = &InvalidArgumentError{msg: "values parameter must be an object"}
	// ErrBadFns rejects a nil validator map at construction.
	ErrBadFns = &InvalidArgumentError{msg: "fns parameter must be an object"}
)

// FormState tracks current field values, derived per-field errors, and the
// dirty/touched flags. Errors and Invalid are recomputed on every transition
// and must not be written by callers. Fns is carried forward unchanged across
// the whole transition chain.
//
// FormState performs no locking of its own; hosts sharing one instance across
// goroutines supply their own mutual exclusion (see Registry).
type FormState[R comparable] struct {
	Values  Values
	Fns     Validators[R]
	Errors  map[string]R
	Invalid bool
	Dirty   bool
	Touched bool
}

//
// Public API
//

// New constructs a FormState and immediately runs a validation pass, so
// Errors and Invalid are readable from the moment the caller holds the
// instance. Both maps must be non-nil (empty is fine).
func New[R comparable](values Values, fns Validators[R], dirty, touched bool) (*FormState[R], error) {
	if values == nil {
		return nil, ErrBadValues
	}
	if fns == nil {
		return nil, ErrBadFns
	}
	f := &FormState[R]{
		Values:  values,
		Fns:     fns,
		Dirty:   dirty,
		Touched: touched,
	}
	f.revalidate()
	return f, nil
}

// NewForm constructs the boolean variant with dirty and touched false.
// A nil fns is treated as empty.
func NewForm(values Values, fns BoolValidators) (*Form, error) {
	if fns == nil {
		fns = BoolValidators{}
	}
	return New(values, fns, false, false)
}

// Set shallow-merges partial over the current values in place: fields present
// in partial overwrite the current field, fields absent stay untouched. It
// marks the form touched and re-runs validation, whether or not any value
// actually changed.
func (f *FormState[R]) Set(partial Values) error {
	if partial == nil {
		return ErrBadValues
	}
	f.Touched = true
	merge(f.Values, partial)
	f.revalidate()
	return nil
}

// Next returns a new FormState built from a merged copy of the current
// values, carrying the same Fns and Dirty flag, with Touched set and a fresh
// validation pass run at construction.
//
// The receiver's Touched flag is flipped as a side effect; its Values are not
// shared with or visible through the returned instance.
func (f *FormState[R]) Next(partial Values) (*FormState[R], error) {
	if partial == nil {
		return nil, ErrBadValues
	}
	f.Touched = true

	merged := make(Values, len(f.Values)+len(partial))
	merge(merged, f.Values)
	merge(merged, partial)

	return New(merged, f.Fns, f.Dirty, true)
}

// Submit marks the receiver dirty and returns a re-validated snapshot of it.
// When evt is non-nil its PreventDefault is invoked exactly once, suppressing
// the host platform's default submission behavior. Submit performs no
// submission of its own: callers inspect the returned Invalid flag to decide
// whether to proceed.
func (f *FormState[R]) Submit(evt Canceler) *FormState[R] {
	if evt != nil {
		evt.PreventDefault()
	}
	f.Dirty = true

	values := make(Values, len(f.Values))
	merge(values, f.Values)

	// Values and Fns are non-nil for any constructed FormState.
	snap, _ := New(values, f.Fns, true, f.Touched)
	return snap
}

// Validate computes the error surface for the given fields. Pure: it never
// mutates values or fns. Each field's error is the OR across its registered
// validators, short-circuiting on the first non-zero result; a field with no
// validators is always clean. The returned map's key set equals fields.
// invalid reports whether any field's error is non-zero.
func Validate[R comparable](fields []string, values Values, fns Validators[R]) (errs map[string]R, invalid bool) {
	var zero R
	errs = make(map[string]R, len(fields))
	for _, name := range fields {
		result := zero
		for _, fn := range fns[name] {
			if r := fn(values[name]); r != zero {
				result = r
				break
			}
		}
		errs[name] = result
		if result != zero {
			invalid = true
		}
	}
	return errs, invalid
}

//
// Helper Functions (internal API)
//

// revalidate rebuilds Errors/Invalid from the current values. Called by every
// transition; Errors always mirrors the Values key set.
func (f *FormState[R]) revalidate() {
	f.Errors, f.Invalid = Validate(f.fieldNames(), f.Values, f.Fns)
}

func (f *FormState[R]) fieldNames() []string {
	names := make([]string, 0, len(f.Values))
	for name := range f.Values {
		names = append(names, name)
	}
	return names
}

// merge shallow-copies partial entries over dst.
func merge(dst, partial Values) {
	for k, v := range partial {
		dst[k] = v
	}
}
