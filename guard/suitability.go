package guard

import (
	"context"

	"github.com/eSolutionsGrup/license-manager/guard/assert"
	"github.com/eSolutionsGrup/license-manager/guard/internal/nilcheck"
	"github.com/eSolutionsGrup/license-manager/guard/licensing"
	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

// probeCaller is the synthetic caller identity used when probing a
// candidate. Its namespace must stay outside every trusted-caller set so a
// candidate cannot pass by trusting the probe itself.
var probeCaller = permission.TypeIdentity{Namespace: "probe", Name: "SuitabilityProbe"}

// isSuitableReplacement reports whether a candidate enforcement point
// already blocks the three critical attack vectors: unlocking the license
// deserialization routine, unlocking the validation entry point, and
// replacing the active enforcement point. A candidate that denies all
// three is left in place untouched.
//
// Called only during installation, never at runtime. Probing mutates
// nothing, so re-probing an unchanged candidate yields the same verdict.
//
// A surface whose probe targets are missing indicates a broken build; that
// is surfaced as an assertion error, never folded into the verdict.
func isSuitableReplacement(candidate Policy, surface licensing.Surface, asserter *assert.Asserter) (bool, error) {
	if nilcheck.Interface(candidate) {
		return false, ErrNilPolicy
	}

	ctx := context.Background()
	if err := asserter.NoError(ctx, surface.Validate(), "suitability probe targets must exist",
		"namespace", surface.Namespace); err != nil {
		return false, err
	}

	probes := []permission.Request{
		permission.ReflectionUnlock(probeCaller, surface.DeserializeEntry),
		permission.ReflectionUnlock(probeCaller, surface.ValidateEntry),
		permission.ReplacePolicy(),
	}

	for _, probe := range probes {
		if candidate.CheckPermission(probe) == nil {
			// the candidate allowed an attack vector
			return false, nil
		}
	}

	return true, nil
}
