// Package matchers contains the signature predicates used by the built-in
// registry. Every predicate inspects a prefix of the input and must return
// false, never panic, when the prefix is too short to decide.
package matchers
