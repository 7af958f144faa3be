// Package registry holds the static type-protection data consulted by the
// guard's reflection-unlock rule.
//
// A Registry is an immutable set of namespace prefixes whose non-public
// members must never be reflectively unlocked, minus a single canonical
// exemption type. The foundational runtime type set is fixed, process-wide
// package data.
package registry
