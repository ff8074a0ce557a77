// Command commandline has a small fixed set of tests whose output is compared byte for byte
// with the expected files, under each command line option.
package main

import (
	"strings"
	"time"

	"github.com/snowtest/snow-contract-tests/framework"
)

func main() {
	root := framework.NewSuite()
	root.Describe("commandline", func(g *framework.Group) {
		g.Test("passing test", func(t *framework.T) {
			t.AssertEqInt(1, 1)
			t.AssertEqStr("snow", "snow")
		})

		g.Test("failing test", func(t *framework.T) {
			t.AssertEqInt(1, 2)
			t.AssertNeqStr("snow", "ice")
			t.AssertEqFloat(0.5, 0.25)
		})

		g.Describe("nested", func(g *framework.Group) {
			g.It("runs deferred actions in reverse order", func(t *framework.T) {
				var trail []string
				t.Defer(func() { t.AssertEqStr(strings.Join(trail, ","), "second,first") })
				t.Defer(func() { trail = append(trail, "first") })
				t.Defer(func() { trail = append(trail, "second") })
				t.AssertEqInt(len(trail), 0)
			})
		})
	})

	framework.Main(root, framework.WithClock(framework.NewStepClock(time.Unix(0, 0), time.Millisecond)))
}
