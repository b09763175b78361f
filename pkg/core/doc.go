// Package core runs one goconemu invocation: resolve the pane path, start
// the terminal, and on any failure fall back to starting the terminal in the
// original path.
//
// # Failure handling
//
// Open is the only error boundary. Errors from the resolver and the launcher
// travel up unchanged; Open logs them with their code and details, shows the
// alert, and then launches the terminal with the path it was given. A panic
// anywhere below Open takes the same route.
//
// The fallback launch is the last thing that happens. If it fails as well the
// failure is logged and returned, the alert has already been shown.
package core
