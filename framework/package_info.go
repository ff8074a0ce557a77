// Package framework is a small hierarchical unit-testing framework for standalone programs.
//
// The general model is:
//
// 1. A program builds a registration tree before anything runs: NewSuite returns the root
// Group, Group.Describe nests groups, and Group.Test (or Group.It) adds leaf tests.
//
// 2. The tree is walked depth-first, in registration order. Each leaf receives a *T, which
// is similar to Go's *testing.T: it has typed assertion methods, a Defer method for scoped
// cleanup, and it implements the Errorf/FailNow pair so that the testify assert/require
// packages can also be used.
//
// 3. Every assertion outcome is streamed immediately to a TestLogger. The ConsoleTestLogger
// prints one line per outcome, starting with a fixed-width success or failure glyph.
//
// Main wires all of this to a command line (see Program for the flags it accepts) and exits
// with a non-zero status if anything failed.
package framework
