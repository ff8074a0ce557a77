// Command cleanup checks that deferred actions run in reverse order and exactly once,
// whichever way a test ends.
package main

import (
	"strings"
	"time"

	"github.com/snowtest/snow-contract-tests/framework"
)

func main() {
	root := framework.NewSuite()

	root.Describe("lifo", func(g *framework.Group) {
		var trail []string
		g.Setup(func(t *framework.T) {
			t.Defer(func() { t.AssertEqStr(strings.Join(trail, " "), "third second first group") })
			t.Defer(func() { trail = append(trail, "group") })
		})

		g.Test("runs deferred actions in reverse order", func(t *framework.T) {
			for _, name := range []string{"first", "second", "third"} {
				name := name
				t.Defer(func() { trail = append(trail, name) })
			}
			t.AssertEqInt(len(trail), 0)
		})

		g.Test("sees the previous test's cleanups", func(t *framework.T) {
			t.AssertEqStr(strings.Join(trail, " "), "third second first")
		})
	})

	root.Describe("after-failure", func(g *framework.Group) {
		g.Test("runs deferred actions when an assertion fails", func(t *framework.T) {
			ran := false
			t.Defer(func() { t.Assert(ran, "deferred action ran") })
			t.Defer(func() { ran = true })
			t.AssertEqInt(1, 2)
		})

		g.Test("runs deferred actions when the test stops early", func(t *framework.T) {
			ran := false
			t.Defer(func() { t.Assert(ran, "deferred action ran") })
			t.Defer(func() { ran = true })
			t.Require().AssertEqStr("stop", "go")
			t.AssertEqStr("unreachable", "")
		})
	})

	framework.Main(root, framework.WithClock(framework.NewStepClock(time.Unix(0, 0), time.Millisecond)))
}
