package registry

import (
	"maps"
	"strings"
	"sync"

	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

// foundationalTypes are the runtime types whose non-public members are
// never unlockable from outside the trusted runtime boundary: the
// type-metadata type, the unlock mechanism itself, the immutable text
// type, and the process/environment type.
var foundationalTypes = []permission.TypeIdentity{
	{Namespace: "reflect", Name: "Type"},
	{Namespace: "reflect", Name: "Value"},
	{Namespace: "", Name: "string"},
	{Namespace: "os", Name: "Process"},
}

var (
	foundationalMapOnce sync.Once
	foundationalMap     map[permission.TypeIdentity]bool
)

// FoundationalTypes returns the fixed foundational runtime type set.
func FoundationalTypes() []permission.TypeIdentity {
	return append([]permission.TypeIdentity(nil), foundationalTypes...)
}

// foundationalTypesMap provides a map view of FoundationalTypes for lookup.
// The underlying cache is initialized only once; each call returns a shallow
// clone so callers cannot mutate shared state.
func foundationalTypesMap() map[permission.TypeIdentity]bool {
	foundationalMapOnce.Do(func() {
		foundationalMap = make(map[permission.TypeIdentity]bool, len(foundationalTypes))
		for _, identity := range foundationalTypes {
			foundationalMap[identity] = true
		}
	})

	clone := make(map[permission.TypeIdentity]bool, len(foundationalMap))
	maps.Copy(clone, foundationalMap)

	return clone
}

// IsFoundational reports whether the type belongs to the fixed foundational
// runtime type set.
func IsFoundational(identity permission.TypeIdentity) bool {
	return foundationalTypesMap()[identity]
}

// Registry is an immutable set of protected namespace prefixes plus one
// canonical exemption type. It is computed once during installation and
// never mutated, so concurrent lookups need no locking.
type Registry struct {
	prefixes  []string
	exemption permission.TypeIdentity
}

// New builds a Registry from the given namespace prefixes and exemption
// type. Empty and duplicate prefixes are dropped; the prefix slice is
// copied so the caller cannot mutate the Registry afterward.
func New(prefixes []string, exemption permission.TypeIdentity) *Registry {
	seen := make(map[string]bool, len(prefixes))
	kept := make([]string, 0, len(prefixes))

	for _, prefix := range prefixes {
		trimmed := strings.TrimSpace(prefix)
		if trimmed == "" || seen[trimmed] {
			continue
		}

		seen[trimmed] = true
		kept = append(kept, trimmed)
	}

	return &Registry{prefixes: kept, exemption: exemption}
}

// Prefixes returns a copy of the protected namespace prefixes.
func (r *Registry) Prefixes() []string {
	if r == nil {
		return nil
	}

	return append([]string(nil), r.prefixes...)
}

// Exemption returns the single canonical exemption type.
func (r *Registry) Exemption() permission.TypeIdentity {
	if r == nil {
		return permission.TypeIdentity{}
	}

	return r.exemption
}

// IsProtected reports whether the type's namespace matches a registered
// prefix and the type is not the canonical exemption. Matching is exact on
// namespace segment boundaries, so "example.com/lic" does not capture
// "example.com/licother".
func (r *Registry) IsProtected(identity permission.TypeIdentity) bool {
	if r == nil || identity.Namespace == "" {
		return false
	}

	if identity == r.exemption {
		return false
	}

	for _, prefix := range r.prefixes {
		if Matches(identity.Namespace, prefix) {
			return true
		}
	}

	return false
}

// Matches reports whether namespace equals prefix or sits below it on a
// path or dot boundary.
func Matches(namespace, prefix string) bool {
	if namespace == prefix {
		return true
	}

	if !strings.HasPrefix(namespace, prefix) {
		return false
	}

	next := namespace[len(prefix)]

	return next == '/' || next == '.'
}
