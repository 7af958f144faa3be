// Package permission models privileged-operation requests.
//
// A Request is a transient value describing one intercepted call: an
// operation Kind plus kind-specific parameters. Requests carry identity
// only; they never own or interpret the types they reference.
package permission
