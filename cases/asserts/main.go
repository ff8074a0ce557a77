// Command asserts exercises every check kind in a fixed order. Each of the typed groups
// reports [failed, passed, passed, failed]: a failing equality, a passing equality, a
// passing inequality, then a failing inequality.
package main

import (
	"time"

	"github.com/snowtest/snow-contract-tests/framework"
)

func main() {
	root := framework.NewSuite()
	root.Describe("asserts", func(g *framework.Group) {
		g.Test("asserteq_int, assertneq_int", func(t *framework.T) {
			t.AssertEqInt(1, 2)
			t.AssertEqInt(1, 1)
			t.AssertNeqInt(1, 2)
			t.AssertNeqInt(1, 1)
		})

		g.Test("asserteq_dbl, assertneq_dbl", func(t *framework.T) {
			t.AssertEqFloat(1.5, 1.25)
			t.AssertEqFloat(1.5, 1.5)
			t.AssertNeqFloat(1.5, 1.25)
			t.AssertNeqFloat(1.5, 1.5)
		})

		g.Test("asserteq_ptr, assertneq_ptr", func(t *framework.T) {
			a, b := 1, 1
			t.AssertEqPtr(&a, &b)
			t.AssertEqPtr(&a, &a)
			t.AssertNeqPtr(&a, &b)
			t.AssertNeqPtr(&a, &a)
			t.Assert(true, "test worked")
		})

		g.Test("asserteq_str, assertneq_str", func(t *framework.T) {
			t.AssertEqStr("hello", "world")
			t.AssertEqStr("hello", "hello")
			t.AssertNeqStr("hello", "world")
			t.AssertNeqStr("hello", "hello")
		})

		g.Test("asserteq_buf, assertneq_buf", func(t *framework.T) {
			x, y := []byte("1234X"), []byte("1234Y")
			t.AssertEqBuf(x, y, 5)
			t.AssertEqBuf(x, y, 4)
			t.AssertNeqBuf(x, y, 5)
			t.AssertNeqBuf(x, y, 4)
		})

		g.Test("asserteq", func(t *framework.T) {
			a, b := 1, 2
			t.AssertEq(1, 1)
			t.AssertEq(1, 2)
			t.AssertEq(0.5, 0.5)
			t.AssertEq(0.5, 0.25)
			t.AssertEq(&a, &a)
			t.AssertEq(&a, &b)
			t.AssertEq("snow", "snow")
			t.AssertEq("snow", "ice")
		})

		g.Test("assertneq", func(t *framework.T) {
			a, b := 1, 2
			t.AssertNeq(1, 1)
			t.AssertNeq(1, 2)
			t.AssertNeq(0.5, 0.5)
			t.AssertNeq(0.5, 0.25)
			t.AssertNeq(&a, &a)
			t.AssertNeq(&a, &b)
			t.AssertNeq("snow", "snow")
			t.AssertNeq("snow", "ice")
		})
	})

	framework.Main(root, framework.WithClock(framework.NewStepClock(time.Unix(0, 0), time.Millisecond)))
}
