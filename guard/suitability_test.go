//go:build unit

package guard

import (
	"errors"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eSolutionsGrup/license-manager/guard/assert"
	"github.com/eSolutionsGrup/license-manager/guard/licensing"
	"github.com/eSolutionsGrup/license-manager/guard/log"
	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

func testAsserter() *assert.Asserter {
	return assert.New(log.NewNop(), "guard", "suitability")
}

func TestCandidateDenyingAllProbesIsSuitable(t *testing.T) {
	t.Parallel()

	suitable, err := isSuitableReplacement(denyAll, licensing.DefaultSurface(), testAsserter())
	require.NoError(t, err)
	tassert.True(t, suitable)
}

func TestPermissiveCandidateIsUnsuitable(t *testing.T) {
	t.Parallel()

	suitable, err := isSuitableReplacement(allowAll, licensing.DefaultSurface(), testAsserter())
	require.NoError(t, err)
	tassert.False(t, suitable)
}

func TestCandidateAllowingOneVectorIsUnsuitable(t *testing.T) {
	t.Parallel()

	surface := licensing.DefaultSurface()

	// Denies everything except unlocking the validation entry point.
	partial := policyFunc(func(req permission.Request) error {
		if req.Kind == permission.KindReflectionUnlock && len(req.Members) == 1 &&
			req.Members[0] == surface.ValidateEntry {
			return nil
		}

		return errStubDenied
	})

	suitable, err := isSuitableReplacement(partial, surface, testAsserter())
	require.NoError(t, err)
	tassert.False(t, suitable)
}

func TestNilCandidateIsRejected(t *testing.T) {
	t.Parallel()

	_, err := isSuitableReplacement(nil, licensing.DefaultSurface(), testAsserter())
	tassert.True(t, errors.Is(err, ErrNilPolicy))

	var typedNil *Guard

	_, err = isSuitableReplacement(typedNil, licensing.DefaultSurface(), testAsserter())
	tassert.True(t, errors.Is(err, ErrNilPolicy))
}

func TestIncompleteSurfaceIsAnAssertionNotAVerdict(t *testing.T) {
	t.Parallel()

	broken := licensing.DefaultSurface()
	broken.ValidateEntry = permission.Member{}

	_, err := isSuitableReplacement(denyAll, broken, testAsserter())
	require.Error(t, err)
	tassert.True(t, errors.Is(err, assert.ErrAssertionFailed))
}

func TestProbingIsSideEffectFree(t *testing.T) {
	t.Parallel()

	candidate := &recordingPolicy{verdict: func(permission.Request) error { return errStubDenied }}
	surface := licensing.DefaultSurface()

	first, err := isSuitableReplacement(candidate, surface, testAsserter())
	require.NoError(t, err)

	second, err := isSuitableReplacement(candidate, surface, testAsserter())
	require.NoError(t, err)

	tassert.Equal(t, first, second, "re-probing an unchanged candidate yields the same verdict")
	require.Len(t, candidate.seen, 6, "exactly three probes per evaluation")

	tassert.Equal(t, permission.KindReflectionUnlock, candidate.seen[0].Kind)
	tassert.Equal(t, permission.KindReflectionUnlock, candidate.seen[1].Kind)
	tassert.Equal(t, permission.KindReplacePolicy, candidate.seen[2].Kind)
	tassert.Equal(t, candidate.seen[:3], candidate.seen[3:], "probe order is stable")
}

func TestProbeCallerIsOutsideTrustedBoundary(t *testing.T) {
	t.Parallel()

	g := testGuard(nil)

	tassert.False(t, g.trustedCaller(probeCaller),
		"a candidate must not be able to pass by trusting the probe itself")
}

func TestGuardItselfIsSuitable(t *testing.T) {
	t.Parallel()

	g := testGuard(nil)

	suitable, err := isSuitableReplacement(g, licensing.DefaultSurface(), testAsserter())
	require.NoError(t, err)
	tassert.True(t, suitable, "the guard denies all three attack vectors")
}
