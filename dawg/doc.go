// Package dawg stores large sets of strings as a minimal deterministic
// acyclic finite-state automaton (a DAWG of words).
//
// Two interoperable representations are provided. Set is the mutable builder:
// strings can be added and removed in any order, and the automaton is kept
// minimal after every operation. CompactSet is the read-only form produced by
// Set.Compress: the whole automaton laid out in a flat integer array, cheap to
// serialize and to share between concurrent readers.
//
// All enumeration operations (iteration, prefix, substring, suffix and range
// queries) are lazy and run over either representation. Strings are treated
// as sequences of 16-bit code units; code unit 0 is reserved by the map
// facades in package dawgmap and is otherwise permitted.
package dawg
