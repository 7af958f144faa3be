// Package log defines the structured logging abstraction used across the
// guard.
//
// The guard logs installation decisions only; denials are returned as
// errors, never logged and swallowed. Hosts plug in a production
// implementation (see the zap subpackage) or leave the default no-op.
package log
