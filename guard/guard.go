package guard

import (
	"github.com/eSolutionsGrup/license-manager/guard/log"
	"github.com/eSolutionsGrup/license-manager/guard/permission"
	"github.com/eSolutionsGrup/license-manager/guard/registry"
)

// Guard is this module's enforcement point. It owns at most one wrapped
// prior policy and is immutable after construction, so concurrent checks
// need no locking.
type Guard struct {
	next    Policy
	reg     *registry.Registry
	trusted []string
	logger  log.Logger
}

// Compile-time assertions: *Guard implements both policy surfaces.
var (
	_ Policy                    = (*Guard)(nil)
	_ LegacyMemberAccessChecker = (*Guard)(nil)
)

// newGuard builds a Guard wrapping next. Guards are only constructed by
// the installation protocol; there is no public constructor.
func newGuard(next Policy, cfg *config) *Guard {
	return &Guard{
		next:    next,
		reg:     registry.New([]string{cfg.surface.Namespace}, cfg.surface.Exemption),
		trusted: append([]string(nil), cfg.trustedCallers...),
		logger:  cfg.logger,
	}
}

// Next returns the wrapped prior enforcement point, or nil.
func (g *Guard) Next() Policy {
	if g == nil {
		return nil
	}

	return g.next
}

// CheckPermission applies the guard's own rule for the request's category,
// then forwards to the wrapped policy so its denials still compose. Only
// replacement of the enforcement point is vetoed without delegation.
func (g *Guard) CheckPermission(req permission.Request) error {
	switch classify(req) {
	case categoryReplacePolicy:
		// Absolute veto: a weaker policy must never install itself
		// over this guard.
		return deny(req.Kind, "", "replacing the active enforcement point is prohibited")
	case categoryReflectionUnlock:
		if err := g.checkReflectionUnlock(req); err != nil {
			return err
		}
	}

	return g.forward(req)
}

func (g *Guard) forward(req permission.Request) error {
	if g.next == nil {
		return nil
	}

	return g.next.CheckPermission(req)
}

// CheckMemberAccess forwards the legacy member-access callback to the
// wrapped policy when it implements the optional capability. Absent the
// capability, the call is a safe no-op permit.
func (g *Guard) CheckMemberAccess(target permission.TypeIdentity, kind permission.MemberAccessKind) error {
	checker, ok := g.next.(LegacyMemberAccessChecker)
	if !ok {
		return nil
	}

	return checker.CheckMemberAccess(target, kind)
}

// protectedNamespaces lists the namespace prefixes shielded by this
// guard's registry. Used by installation logging.
func (g *Guard) protectedNamespaces() []string {
	return g.reg.Prefixes()
}
