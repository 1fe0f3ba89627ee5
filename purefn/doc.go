// Package purefn memoizes pure functions.
//
// Tableize is only correct for functions that are referentially transparent: the same
// input always yields the same output and nothing else happens. A loggable.Transform
// qualifies, since its history is part of its return value rather than a side effect.
//
// The cache is a bounded two-generation trie: when the head generation fills up, the
// older one is dropped and lookups fall back to it until then.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
