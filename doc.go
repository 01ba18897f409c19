// Package scan is an allocation-free foundation for hand-written recursive
// descent parsers over any contiguous sequence of elements: bytes, runes, or
// custom token types.
//
// A Scanner wraps a borrowed view of the input and tracks a cursor into it.
// Patterns describe what to recognise through two small contracts: Match
// tests whether the pattern matches at the start of a candidate slice, and
// MatchSize declares the pattern's statically known length, zero meaning
// "variable, run the matcher to find out". Recognize bridges a Pattern to a
// live Scanner, advancing the cursor by exactly the matched length and
// returning the consumed elements as a sub-slice of the original input.
// Nothing is ever copied out of the input view.
//
// Richer values are built with the Visitor contract: a type constructs
// itself by sequencing Recognize/Expect calls and nested Accept calls
// against one shared Scanner. Visitors nest to arbitrary depth through
// ordinary call-stack recursion.
//
// The core never rewinds on failure. Code that needs alternation must
// snapshot Position before the first attempt and Rewind to it before trying
// the next alternative; omitting the rewind leaves the cursor mid-pattern
// and silently corrupts everything parsed afterwards.
//
// A parse is single-threaded and synchronous: exactly one caller drives a
// given Scanner at a time. The underlying input is never mutated, so
// independent Scanners over the same data may run concurrently without
// synchronisation.
package scan
