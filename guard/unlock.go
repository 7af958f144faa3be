package guard

import (
	"fmt"

	"github.com/eSolutionsGrup/license-manager/guard/permission"
	"github.com/eSolutionsGrup/license-manager/guard/registry"
)

// checkReflectionUnlock applies the guard's own rule to a reflection-unlock
// request. A pass here is not a verdict: the caller still forwards the
// request to the wrapped policy for its independent judgment.
func (g *Guard) checkReflectionUnlock(req permission.Request) error {
	for _, member := range req.Members {
		declaring := member.Declaring
		if declaring.IsZero() {
			continue
		}

		if registry.IsFoundational(declaring) && !g.trustedCaller(req.Caller) {
			return deny(req.Kind, declaring.Simple(),
				"reflection access to non-public members of foundational runtime types prohibited")
		}

		if g.reg.IsProtected(declaring) {
			return deny(req.Kind, declaring.Simple(),
				fmt.Sprintf("reflection access to non-public members of licensing type [%s] prohibited", declaring.Simple()))
		}
	}

	return nil
}

// trustedCaller reports whether the request's caller identity sits inside
// the trusted runtime boundary. The boundary is an explicit allow-listed
// namespace set fixed at installation, not a stack inspection.
func (g *Guard) trustedCaller(caller permission.TypeIdentity) bool {
	if caller.Namespace == "" {
		return false
	}

	for _, prefix := range g.trusted {
		if registry.Matches(caller.Namespace, prefix) {
			return true
		}
	}

	return false
}
