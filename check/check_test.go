package check

import (
	"regexp"
	"testing"

	"github.com/comalice/formstatex"
)

func TestRequired(t *testing.T) {
	v := Required()
	if !v("") {
		t.Error("empty string must be flagged")
	}
	if !v(nil) {
		t.Error("nil must be flagged")
	}
	if v("x") {
		t.Error("non-empty string must pass")
	}
	if v(112) {
		t.Error("numbers stringify non-empty and must pass")
	}
}

func TestLenBounds(t *testing.T) {
	if MinLen(3)("ab") != true {
		t.Error("short value must be flagged")
	}
	if MinLen(3)("abc") != false {
		t.Error("boundary value must pass")
	}
	if MaxLen(3)("abcd") != true {
		t.Error("long value must be flagged")
	}
	if MaxLen(3)("abc") != false {
		t.Error("boundary value must pass")
	}
}

func TestLenBoundsCountRunes(t *testing.T) {
	// Two characters, four bytes.
	if !MinLen(3)("éé") {
		t.Error("two-rune value must be flagged by MinLen(3)")
	}
	if MinLen(2)("éé") {
		t.Error("two-rune value must satisfy MinLen(2)")
	}
	if MaxLen(2)("éé") {
		t.Error("two-rune value must satisfy MaxLen(2)")
	}
	if !MaxLen(3)("éééé") {
		t.Error("four-rune value must be flagged by MaxLen(3)")
	}
}

func TestMatch(t *testing.T) {
	v := Match(regexp.MustCompile(`^\d+$`))
	if v("112") {
		t.Error("digits must pass")
	}
	if !v("abc") {
		t.Error("non-digits must be flagged")
	}
	if !v("") {
		t.Error("empty value must be flagged")
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf("free", "pro")
	if v("free") || v("pro") {
		t.Error("listed options must pass")
	}
	if !v("enterprise") {
		t.Error("unlisted option must be flagged")
	}
}

func TestNumber(t *testing.T) {
	v := Number()
	if v(112) || v(1.5) || v("42") {
		t.Error("numeric values must pass")
	}
	if !v("abc") || !v(nil) {
		t.Error("non-numeric values must be flagged")
	}
}

func TestCombinators(t *testing.T) {
	short := MinLen(5)
	blank := Required()

	any := Any(short, blank)
	if !any("ab") {
		t.Error("Any must flag when one member flags")
	}
	if any("abcde") {
		t.Error("Any must pass when all members pass")
	}

	all := All(short, blank)
	if !all("") {
		t.Error("All must flag when every member flags")
	}
	if all("ab") {
		t.Error("All must pass when any member passes")
	}
	if All()("anything") {
		t.Error("empty All must never flag")
	}
}

// Validators plug straight into a form's per-field lists.
func TestIntegrationWithForm(t *testing.T) {
	form, err := formstatex.NewForm(
		formstatex.Values{"username": "", "plan": "free"},
		formstatex.BoolValidators{
			"username": {Required(), MinLen(3)},
			"plan":     {OneOf("free", "pro")},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	if !form.Errors["username"] || form.Errors["plan"] {
		t.Errorf("unexpected errors: %v", form.Errors)
	}

	if err := form.Set(formstatex.Values{"username": "ada"}); err != nil {
		t.Fatal(err)
	}
	if form.Invalid {
		t.Errorf("expected valid form, errors: %v", form.Errors)
	}
}
