// Package extract turns a timetable page's text into schedule sections.
//
// Two extraction strategies exist, matching two document-rendering
// fidelities. [GeometryExtractor] works on positioned text fragments and
// recovers structure spatially: rows by vertical proximity, columns via the
// grid package, cells by x-containment. [LineExtractor] works on plain
// reading-order text and recovers structure purely through pattern matching
// over consecutive lines.
//
// Both strategies share an accumulator, which carries the per-document
// state (current department, default room, in-progress section) and
// enforces the emission invariant: a section is flushed only when it has a
// section identifier and at least one entry, otherwise a skip report is
// produced.
//
// Extraction is synchronous and deterministic: identical input yields an
// identical Result, and one malformed page never aborts the remaining pages.
package extract
