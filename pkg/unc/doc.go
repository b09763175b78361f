// Package unc classifies and splits UNC network paths.
//
// A UNC path names a server and a share without a drive letter:
//
//	\\server\share\sub\dir
//
// Parse splits it into the server, the share and the remainder. The
// server+share key (\\server\share) is what drive mappings are matched on.
package unc
