// Package guard installs and operates the runtime perimeter around the
// license-validation subsystem.
//
// The guard is an enforcement point consulted before every privileged
// operation (process exit, network binding, filesystem access, package
// access, reflection-unlock, and replacement of the enforcement point
// itself). It wraps at most one previously active policy and, for every
// intercepted operation, applies its own rule first and then forwards to
// the wrapped policy, so denials compose.
//
// Basic usage:
//
//	if err := guard.Install(); err != nil {
//	    // the process must not continue
//	    panic(err)
//	}
//
//	if err := guard.Check(permission.FileRead("/etc/passwd")); err != nil {
//	    // denied by the active enforcement point
//	}
//
// Two operations carry bespoke rules: replacing the enforcement point is
// always denied outright, and reflection-unlock requests are checked
// against the protected-namespace registry and the foundational runtime
// type set before delegation.
package guard
