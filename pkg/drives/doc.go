// Package drives inspects, allocates and creates drive-letter mappings for
// network shares.
//
// The OS state it works with is always queried fresh: which letters are in
// use (a 26-bit mask) and which letters are bound to which \\server\share.
// Nothing is cached between calls and goconemu never removes a mapping it has
// created.
//
// Two backends exist for listing and creating mappings. The netuse backend
// drives the net use command and parses its text report; the wnet backend
// calls the WNet functions of mpr.dll directly and is only available on
// Windows.
package drives
