// Package vercmp compares loosely formatted version strings such as the
// ones browsers put into their user-agent headers ("537.36", "9_1",
// "11.0b2", "7B405").
//
// Versions are split on dots. Every dot-separated segment is consumed as a
// sequence of (number, suffix) chunks: numbers compare numerically, a chunk
// without a suffix ranks above one with a suffix ("1.0" > "1.0a"), and
// suffixes compare lexically. Missing segments are treated as empty, so
// "1.0" and "1.0.0" are equal.
//
// # Usage
//
//	vercmp.Compare("10.0", "9.1")   // 1
//	vercmp.Compare("1.0a", "1.0")   // -1
//	vercmp.AtLeast("537.36", "537") // true
//
// Nothing here returns an error: unparsable input degrades to zero chunks.
package vercmp
