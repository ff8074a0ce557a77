// Package snowtests contains the contract tests for framework programs.
//
// Each test runs one of the compiled programs under the cases directory as a child process
// and checks what it printed, its exit status, and any log file it wrote. The suites are
// themselves a framework program: they register groups on a framework tree and report
// through the framework's own TestLogger.
package snowtests
