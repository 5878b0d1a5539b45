// Package layout provides the low-level geometry passes that run before any
// pattern matching: repairing text split across adjacent fragments, and
// grouping fragments into rows by vertical proximity.
//
// The [FragmentMerger] must run before any matching that depends on
// reconstructed tokens, such as numeric room codes ("285" + "2" -> "2852")
// or fragmented roman-numeral semester tags.
package layout
