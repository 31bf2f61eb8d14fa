// Package check provides reusable boolean validators for formstatex forms.
//
// Every constructor returns a formstatex.BoolValidator: a pure predicate over
// the field value where true denotes an error. String-shaped checks coerce
// the value via fmt.Sprint when it is not already a string; a nil value
// coerces to the empty string.
package check

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/comalice/formstatex"
)

// Required flags nil values and empty strings.
func Required() formstatex.BoolValidator {
	return func(value any) bool {
		return text(value) == ""
	}
}

// MinLen flags strings shorter than n characters (runes, not bytes).
func MinLen(n int) formstatex.BoolValidator {
	return func(value any) bool {
		return utf8.RuneCountInString(text(value)) < n
	}
}

// MaxLen flags strings longer than n characters (runes, not bytes).
func MaxLen(n int) formstatex.BoolValidator {
	return func(value any) bool {
		return utf8.RuneCountInString(text(value)) > n
	}
}

// Match flags strings that do not match re. An empty value is flagged;
// compose with Required if absence should report the same error anyway.
func Match(re *regexp.Regexp) formstatex.BoolValidator {
	return func(value any) bool {
		return !re.MatchString(text(value))
	}
}

// OneOf flags values outside the given option set.
func OneOf(options ...string) formstatex.BoolValidator {
	set := make(map[string]struct{}, len(options))
	for _, opt := range options {
		set[opt] = struct{}{}
	}
	return func(value any) bool {
		_, ok := set[text(value)]
		return !ok
	}
}

// Number flags values that are neither a numeric type nor a string parseable
// as a float.
func Number() formstatex.BoolValidator {
	return func(value any) bool {
		switch value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return false
		}
		_, err := strconv.ParseFloat(text(value), 64)
		return err != nil
	}
}

// Any combines validators with OR semantics: the result flags an error when
// any member does. This matches the per-field list evaluation in the core,
// packaged as a single validator.
func Any(validators ...formstatex.BoolValidator) formstatex.BoolValidator {
	return func(value any) bool {
		for _, v := range validators {
			if v(value) {
				return true
			}
		}
		return false
	}
}

// All combines validators with AND semantics: the result flags an error only
// when every member does.
func All(validators ...formstatex.BoolValidator) formstatex.BoolValidator {
	return func(value any) bool {
		for _, v := range validators {
			if !v(value) {
				return false
			}
		}
		return len(validators) > 0
	}
}

// text coerces a field value to its string form. nil coerces to "".
func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
