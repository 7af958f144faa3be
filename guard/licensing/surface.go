package licensing

import (
	"errors"
	"fmt"

	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

// ErrIncompleteSurface indicates a Surface is missing a required identity.
// A surface that cannot name its own probe targets signals a build or
// version mismatch, never a policy verdict.
var ErrIncompleteSurface = errors.New("licensing: incomplete collaborator surface")

// Namespace is the licensing collaborator's own namespace. Every type under
// it is shielded from reflection-unlock except the canonical exemption.
const Namespace = "github.com/eSolutionsGrup/license-manager/licensing"

// Surface is the stable identity surface the license-validation subsystem
// exposes to the guard. All fields are identities; none carry behavior.
type Surface struct {
	// Namespace is the protected namespace prefix.
	Namespace string

	// Exemption is the one type inside Namespace that may be reflectively
	// unlocked, because it implements a sanctioned extension point.
	Exemption permission.TypeIdentity

	// DeserializeEntry is the non-public deserialization routine of the
	// license object model. First suitability probe target.
	DeserializeEntry permission.Member

	// ValidateEntry is the validation entry point of the license manager.
	// Second suitability probe target.
	ValidateEntry permission.Member
}

// DefaultSurface returns the surface of the licensing collaborator this
// module ships with.
func DefaultSurface() Surface {
	return Surface{
		Namespace: Namespace,
		Exemption: permission.TypeIdentity{Namespace: Namespace, Name: "FeatureRestriction"},
		DeserializeEntry: permission.Member{
			Name:      "deserialize",
			Declaring: permission.TypeIdentity{Namespace: Namespace, Name: "License"},
		},
		ValidateEntry: permission.Member{
			Name:      "ValidateLicense",
			Declaring: permission.TypeIdentity{Namespace: Namespace, Name: "Manager"},
		},
	}
}

// Validate reports whether the surface names every identity the guard and
// the suitability evaluator depend on.
func (s Surface) Validate() error {
	if s.Namespace == "" {
		return fmt.Errorf("%w: namespace is empty", ErrIncompleteSurface)
	}

	if s.Exemption.IsZero() {
		return fmt.Errorf("%w: exemption type is unset", ErrIncompleteSurface)
	}

	if s.DeserializeEntry.IsZero() || s.DeserializeEntry.Declaring.IsZero() {
		return fmt.Errorf("%w: deserialization entry is unset", ErrIncompleteSurface)
	}

	if s.ValidateEntry.IsZero() || s.ValidateEntry.Declaring.IsZero() {
		return fmt.Errorf("%w: validation entry is unset", ErrIncompleteSurface)
	}

	return nil
}
