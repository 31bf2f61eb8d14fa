package main

import (
	"context"
	"fmt"
	"regexp"

	"github.com/comalice/formstatex"
	"github.com/comalice/formstatex/check"
	"github.com/comalice/formstatex/persist"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func main() {
	form, err := formstatex.NewFormBuilder().
		Field("username", "", check.Required(), check.MinLen(3)).
		Field("email", "", check.Required(), check.Match(emailRe)).
		Field("plan", "free", check.OneOf("free", "pro")).
		Build()
	if err != nil {
		panic(err)
	}

	persister, err := persist.NewJSONPersister("/tmp/formstatex-demo")
	if err != nil {
		panic(err)
	}

	transitions := make(chan persist.Transition, 100)
	publisher := persist.NewChannelPublisher(transitions)

	ctx := context.Background()

	fmt.Printf("initial: invalid=%v errors=%v\n", form.Invalid, form.Errors)

	if err := form.Set(formstatex.Values{"username": "ada", "email": "ada@example.com"}); err != nil {
		panic(err)
	}
	publisher.Publish(ctx, persist.Transition{FormID: "signup", Op: persist.OpSet, Invalid: form.Invalid, Touched: form.Touched})
	fmt.Printf("after set: invalid=%v touched=%v\n", form.Invalid, form.Touched)

	submitted := form.Submit(nil)
	publisher.Publish(ctx, persist.Transition{FormID: "signup", Op: persist.OpSubmit, Invalid: submitted.Invalid, Dirty: submitted.Dirty, Touched: submitted.Touched})
	if submitted.Invalid {
		fmt.Printf("submit blocked: errors=%v\n", submitted.Errors)
	} else {
		fmt.Println("submit accepted")
	}

	if err := persister.Save(ctx, persist.NewSnapshot("signup", submitted)); err != nil {
		panic(err)
	}

	publisher.Close()
	for t := range transitions {
		fmt.Printf("transition: %s invalid=%v dirty=%v touched=%v\n", t.Op, t.Invalid, t.Dirty, t.Touched)
	}
}
