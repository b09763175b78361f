// Package logging sets up goconemu's zerolog logger.
//
// Two sinks are used: a console writer on stderr whose level follows the -v
// count, and the debug log file in the per-user temp directory which always
// receives DEBUG and above. Timestamps carry microsecond precision so that a
// single invocation can be followed line by line.
package logging
