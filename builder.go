package formstatex

import "fmt"

// FormBuilder provides a fluent API for assembling a boolean-variant form
// field by field, instead of constructing the values and validator maps by
// hand.
type FormBuilder struct {
	values  Values
	fns     BoolValidators
	order   []string
	dirty   bool
	touched bool
	err     error
}

// NewFormBuilder creates an empty builder.
func NewFormBuilder() *FormBuilder {
	return &FormBuilder{
		values: Values{},
		fns:    BoolValidators{},
	}
}

// Field declares a field with its initial value and optional validators.
// Declaring the same name twice is an error, reported at Build.
func (b *FormBuilder) Field(name string, initial any, validators ...BoolValidator) *FormBuilder {
	if _, exists := b.values[name]; exists {
		if b.err == nil {
			b.err = fmt.Errorf("duplicate field %q", name)
		}
		return b
	}
	b.values[name] = initial
	b.order = append(b.order, name)
	if len(validators) > 0 {
		b.fns[name] = validators
	}
	return b
}

// Dirty marks the built form as having had a submit attempt.
func (b *FormBuilder) Dirty() *FormBuilder {
	b.dirty = true
	return b
}

// Touched marks the built form as already value-modified.
func (b *FormBuilder) Touched() *FormBuilder {
	b.touched = true
	return b
}

// FieldNames returns the declared field names in declaration order.
func (b *FormBuilder) FieldNames() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Build validates the builder configuration and constructs the Form, running
// its initial validation pass. The form receives its own copies of the value
// and validator maps, so further builder calls never reach into built forms.
func (b *FormBuilder) Build() (*Form, error) {
	if b.err != nil {
		return nil, b.err
	}

	values := make(Values, len(b.values))
	merge(values, b.values)

	fns := make(BoolValidators, len(b.fns))
	for name, list := range b.fns {
		fns[name] = list
	}

	return New(values, fns, b.dirty, b.touched)
}
