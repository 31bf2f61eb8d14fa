// Package testutil provides test-support types for exercising formstatex
// forms without a real host event system.
package testutil

import (
	"reflect"

	"github.com/comalice/formstatex"
)

// EventRecorder satisfies formstatex.Canceler and counts cancellations.
// This stands in for a host UI event in tests.
type EventRecorder struct {
	PreventDefaultCalls int
}

func (e *EventRecorder) PreventDefault() {
	e.PreventDefaultCalls++
}

// ValuesEqual reports whether two value bags hold the same fields with equal
// contents. Two empty bags are equal regardless of nil-ness.
func ValuesEqual(a, b formstatex.Values) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
