// Package harness runs compiled test programs as child processes and checks what they print.
//
// Nothing here links against the program under test: the harness only sees its stdout,
// its exit status and any file it was asked to write. Commands are always started from an
// argument vector, never through a shell.
package harness
