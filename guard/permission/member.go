package permission

// TypeIdentity names a type by its namespace and simple name. The namespace
// is an import-path-like prefix; predeclared types use an empty namespace.
type TypeIdentity struct {
	Namespace string
	Name      string
}

// Qualified returns the fully-qualified identity, e.g. "reflect.Type".
func (t TypeIdentity) Qualified() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}

// Simple returns the simple type name without its namespace.
func (t TypeIdentity) Simple() string {
	return t.Name
}

// IsZero reports whether the identity is entirely unset.
func (t TypeIdentity) IsZero() bool {
	return t.Namespace == "" && t.Name == ""
}

// Member identifies a single non-public member targeted by a
// reflection-unlock request, together with its declaring type.
type Member struct {
	Name      string
	Declaring TypeIdentity
}

// IsZero reports whether the member is entirely unset.
func (m Member) IsZero() bool {
	return m.Name == "" && m.Declaring.IsZero()
}

// MemberAccessKind distinguishes the two scopes of the legacy member-access
// callback retained for wrapped policies that still implement it.
type MemberAccessKind int

const (
	// MemberAccessPublic covers access to public members only.
	MemberAccessPublic MemberAccessKind = iota

	// MemberAccessDeclared covers access to all declared members,
	// including non-public ones.
	MemberAccessDeclared
)

// String returns the string representation of a MemberAccessKind.
func (k MemberAccessKind) String() string {
	switch k {
	case MemberAccessPublic:
		return "public"
	case MemberAccessDeclared:
		return "declared"
	default:
		return unknownStr
	}
}
