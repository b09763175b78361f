// Package resolver turns a pane path into the path the terminal is started in.
//
// Resolution is a single pass with no retries:
//
//	local path                      -> unchanged
//	UNC path that does not parse    -> batch (pushd) fallback
//	share already mapped            -> <letter><remainder>
//	no free drive letter            -> original UNC path
//	new mapping created             -> <letter><remainder>
//	mapping creation refused        -> original UNC path
//
// The decision itself (Decide) is a pure function of the parsed path and a
// Snapshot of OS state; Resolver gathers the snapshot and performs the one
// side effect, creating the mapping.
package resolver
