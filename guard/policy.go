package guard

import "github.com/eSolutionsGrup/license-manager/guard/permission"

// Policy is the enforcement point contract. A nil return allows the
// operation; any error denies it. Implementations must be safe for
// concurrent use and must not retain the request.
type Policy interface {
	CheckPermission(req permission.Request) error
}

// LegacyMemberAccessChecker is the optional capability retained for
// wrapped policies that still implement the legacy member-access callback.
// Policies that do not implement it get a safe no-op permit instead.
type LegacyMemberAccessChecker interface {
	CheckMemberAccess(target permission.TypeIdentity, kind permission.MemberAccessKind) error
}
