package guard

import "github.com/eSolutionsGrup/license-manager/guard/permission"

// category is the handling rule a request is routed to. Exactly two
// operation kinds receive special handling; everything else is a pure
// pass-through to the wrapped policy.
type category int

const (
	categoryForward category = iota
	categoryReplacePolicy
	categoryReflectionUnlock
)

// classify routes a request to exactly one handling rule. Classification
// itself never denies.
func classify(req permission.Request) category {
	switch req.Kind {
	case permission.KindReplacePolicy:
		return categoryReplacePolicy
	case permission.KindReflectionUnlock:
		return categoryReflectionUnlock
	default:
		return categoryForward
	}
}
