package framework

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
)

// Asserter holds the typed checks. Each check reports exactly one outcome as soon as it is
// evaluated and returns whether it passed. A fatal Asserter (see T.Require) also stops the
// test when a check fails.
type Asserter struct {
	t     *T
	fatal bool
}

func (a Asserter) check(ok bool, kind, left, op, right string) bool {
	if ok {
		a.t.report(passed(fmt.Sprintf("%s: %s %s %s", kind, left, op, right)))
	} else {
		a.t.report(failed(fmt.Sprintf("%s: expected %s %s %s", kind, left, op, right)))
	}
	return a.settle(ok)
}

func (a Asserter) settle(ok bool) bool {
	if !ok && a.fatal {
		a.t.FailNow()
	}
	return ok
}

// Assert checks a plain condition, described by description.
func (a Asserter) Assert(ok bool, description string) bool {
	if ok {
		a.t.report(passed(description))
	} else {
		a.t.report(failed(description))
	}
	return a.settle(ok)
}

// AssertEqInt checks that x == y.
func (a Asserter) AssertEqInt(x, y int) bool {
	return a.check(x == y, "int", fmt.Sprintf("%d", x), "==", fmt.Sprintf("%d", y))
}

// AssertNeqInt checks that x != y.
func (a Asserter) AssertNeqInt(x, y int) bool {
	return a.check(x != y, "int", fmt.Sprintf("%d", x), "!=", fmt.Sprintf("%d", y))
}

// AssertEqFloat compares exactly; use AssertEqFloatWithin for a tolerance.
func (a Asserter) AssertEqFloat(x, y float64) bool {
	return a.check(x == y, "float", fmt.Sprintf("%g", x), "==", fmt.Sprintf("%g", y))
}

// AssertNeqFloat is the exact complement of AssertEqFloat.
func (a Asserter) AssertNeqFloat(x, y float64) bool {
	return a.check(x != y, "float", fmt.Sprintf("%g", x), "!=", fmt.Sprintf("%g", y))
}

// AssertEqFloatWithin checks that x and y differ by at most tolerance.
func (a Asserter) AssertEqFloatWithin(x, y, tolerance float64) bool {
	return a.check(math.Abs(x-y) <= tolerance, "float",
		fmt.Sprintf("%g", x), fmt.Sprintf("== (±%g)", tolerance), fmt.Sprintf("%g", y))
}

// AssertEqPtr compares addresses, never what they point to. Any pointer-like value is
// accepted (pointers, unsafe pointers, maps, channels, funcs, slices); nil is address zero.
// Any other operand fails the check.
func (a Asserter) AssertEqPtr(x, y interface{}) bool {
	if !isPointerLike(x) || !isPointerLike(y) {
		return a.incomparable(x, y)
	}
	px, py := address(x), address(y)
	return a.check(px == py, "ptr", formatAddress(px), "==", formatAddress(py))
}

// AssertNeqPtr checks that x and y hold different addresses.
func (a Asserter) AssertNeqPtr(x, y interface{}) bool {
	if !isPointerLike(x) || !isPointerLike(y) {
		return a.incomparable(x, y)
	}
	px, py := address(x), address(y)
	return a.check(px != py, "ptr", formatAddress(px), "!=", formatAddress(py))
}

// AssertEqStr checks that two strings have the same content.
func (a Asserter) AssertEqStr(x, y string) bool {
	return a.check(x == y, "str", fmt.Sprintf("%q", x), "==", fmt.Sprintf("%q", y))
}

// AssertNeqStr checks that two strings differ.
func (a Asserter) AssertNeqStr(x, y string) bool {
	return a.check(x != y, "str", fmt.Sprintf("%q", x), "!=", fmt.Sprintf("%q", y))
}

// AssertEqStrPtr compares two possibly-nil strings. Two nils are equal; nil against a
// non-nil string fails with a message that says so, rather than as a content mismatch.
func (a Asserter) AssertEqStrPtr(x, y *string) bool {
	if (x == nil) != (y == nil) {
		return a.nilMismatch(x, "==", y, false)
	}
	return a.check(x == nil || *x == *y, "str", formatStrPtr(x), "==", formatStrPtr(y))
}

// AssertNeqStrPtr is the complement of AssertEqStrPtr: nil against a string passes.
func (a Asserter) AssertNeqStrPtr(x, y *string) bool {
	if (x == nil) != (y == nil) {
		return a.nilMismatch(x, "!=", y, true)
	}
	return a.check(x != nil && *x != *y, "str", formatStrPtr(x), "!=", formatStrPtr(y))
}

func (a Asserter) nilMismatch(x *string, op string, y *string, ok bool) bool {
	message := fmt.Sprintf("str: %s %s %s", formatStrPtr(x), op, formatStrPtr(y))
	if ok {
		a.t.report(passed(message))
	} else {
		a.t.report(failed("str: expected " + message[len("str: "):] + " (nil string)"))
	}
	return a.settle(ok)
}

// AssertEqBuf compares exactly n bytes of each buffer. A buffer with fewer than n bytes
// fails the check.
func (a Asserter) AssertEqBuf(x, y []byte, n int) bool {
	if short := shortBuffer(x, y, n); short != "" {
		a.t.report(failed(short))
		return a.settle(false)
	}
	return a.check(bytes.Equal(x[:n], y[:n]), fmt.Sprintf("buf[%d]", n),
		fmt.Sprintf("%q", x[:n]), "==", fmt.Sprintf("%q", y[:n]))
}

// AssertNeqBuf checks that the first n bytes differ. Short buffers fail here too.
func (a Asserter) AssertNeqBuf(x, y []byte, n int) bool {
	if short := shortBuffer(x, y, n); short != "" {
		a.t.report(failed(short))
		return a.settle(false)
	}
	return a.check(!bytes.Equal(x[:n], y[:n]), fmt.Sprintf("buf[%d]", n),
		fmt.Sprintf("%q", x[:n]), "!=", fmt.Sprintf("%q", y[:n]))
}

// AssertEq picks the typed check from the dynamic type of x. Both values must have the same
// kind of type; mixing kinds is a failure.
func (a Asserter) AssertEq(x, y interface{}) bool {
	return a.generic(x, y, true)
}

// AssertNeq is the complement of AssertEq for values of the same kind.
func (a Asserter) AssertNeq(x, y interface{}) bool {
	return a.generic(x, y, false)
}

func (a Asserter) generic(x, y interface{}, eq bool) bool {
	if xi, ok := asInt(x); ok {
		if yi, ok := asInt(y); ok {
			if eq {
				return a.AssertEqInt(xi, yi)
			}
			return a.AssertNeqInt(xi, yi)
		}
	}
	if xu, ok := asUint(x); ok {
		if yu, ok := asUint(y); ok {
			return a.checkUint(xu, yu, eq)
		}
	}
	switch xv := x.(type) {
	case float32, float64:
		xf, yf, ok := asFloat(xv), 0.0, false
		switch yv := y.(type) {
		case float32, float64:
			yf, ok = asFloat(yv), true
		}
		if ok {
			if eq {
				return a.AssertEqFloat(xf, yf)
			}
			return a.AssertNeqFloat(xf, yf)
		}
	case string:
		if yv, ok := y.(string); ok {
			if eq {
				return a.AssertEqStr(xv, yv)
			}
			return a.AssertNeqStr(xv, yv)
		}
	case *string:
		if yv, ok := y.(*string); ok {
			if eq {
				return a.AssertEqStrPtr(xv, yv)
			}
			return a.AssertNeqStrPtr(xv, yv)
		}
	case []byte:
		if yv, ok := y.([]byte); ok {
			n := len(xv)
			if len(yv) > n {
				n = len(yv)
			}
			if eq {
				return a.AssertEqBuf(xv, yv, n)
			}
			return a.AssertNeqBuf(xv, yv, n)
		}
	}
	if isPointerLike(x) && isPointerLike(y) {
		if eq {
			return a.AssertEqPtr(x, y)
		}
		return a.AssertNeqPtr(x, y)
	}
	return a.incomparable(x, y)
}

func (a Asserter) incomparable(x, y interface{}) bool {
	a.t.report(failed(fmt.Sprintf("cannot compare %T with %T", x, y)))
	return a.settle(false)
}

// checkUint is used for unsigned values that may not fit in an int.
func (a Asserter) checkUint(x, y uint64, eq bool) bool {
	if eq {
		return a.check(x == y, "int", fmt.Sprintf("%d", x), "==", fmt.Sprintf("%d", y))
	}
	return a.check(x != y, "int", fmt.Sprintf("%d", x), "!=", fmt.Sprintf("%d", y))
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	}
	return 0, false
}

func asUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	}
	return 0, false
}

func asFloat(v interface{}) float64 {
	if f, ok := v.(float32); ok {
		return float64(f)
	}
	return v.(float64)
}

func isPointerLike(v interface{}) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return true
	}
	return false
}

func address(v interface{}) uintptr {
	if !isPointerLike(v) || v == nil {
		return 0
	}
	return reflect.ValueOf(v).Pointer()
}

func formatAddress(p uintptr) string {
	if p == 0 {
		return "(nil)"
	}
	return fmt.Sprintf("%#x", p)
}

func formatStrPtr(s *string) string {
	if s == nil {
		return "(nil)"
	}
	return fmt.Sprintf("%q", *s)
}

func shortBuffer(x, y []byte, n int) string {
	switch {
	case n < 0:
		return fmt.Sprintf("buf[%d]: negative length", n)
	case len(x) < n:
		return fmt.Sprintf("buf[%d]: expected %d bytes on the left, got %d", n, n, len(x))
	case len(y) < n:
		return fmt.Sprintf("buf[%d]: expected %d bytes on the right, got %d", n, n, len(y))
	}
	return ""
}
