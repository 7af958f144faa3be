// Package licensing describes the license-validation collaborator by
// identity only.
//
// The guard never interprets what the collaborator does; it only needs the
// fully-qualified identities of the sensitive entry points it must shield,
// plus a termination hook for environments where the guard cannot be
// established.
package licensing
