// Package executor runs the external programs goconemu depends on.
//
// Two modes are offered. Run waits for the program and captures its output
// and exit code; it is used for the OS mapping facility (net use). Start spawns
// a program and returns immediately; it is used for the terminal emulator and
// the batch fallback script, which must outlive goconemu.
package executor
