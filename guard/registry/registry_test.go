//go:build unit

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eSolutionsGrup/license-manager/guard/permission"
	"github.com/eSolutionsGrup/license-manager/guard/registry"
)

const licensingNS = "example.com/product/licensing"

func newTestRegistry() *registry.Registry {
	return registry.New(
		[]string{licensingNS},
		permission.TypeIdentity{Namespace: licensingNS, Name: "FeatureRestriction"},
	)
}

func TestIsProtectedMatchesNamespacePrefix(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	assert.True(t, reg.IsProtected(permission.TypeIdentity{Namespace: licensingNS, Name: "License"}))
	assert.True(t, reg.IsProtected(permission.TypeIdentity{Namespace: licensingNS + "/internal", Name: "signer"}))
	assert.True(t, reg.IsProtected(permission.TypeIdentity{Namespace: licensingNS + ".v2", Name: "License"}))
}

func TestIsProtectedRespectsSegmentBoundaries(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	assert.False(t, reg.IsProtected(permission.TypeIdentity{Namespace: licensingNS + "extra", Name: "License"}),
		"a sibling namespace sharing the prefix text must not be captured")
	assert.False(t, reg.IsProtected(permission.TypeIdentity{Namespace: "example.com/other", Name: "License"}))
}

func TestIsProtectedExemptsCanonicalType(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	exemption := permission.TypeIdentity{Namespace: licensingNS, Name: "FeatureRestriction"}

	assert.False(t, reg.IsProtected(exemption))
	assert.Equal(t, exemption, reg.Exemption())
}

func TestIsProtectedIsCaseSensitive(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	title := cases.Title(language.English)

	recased := permission.TypeIdentity{Namespace: title.String(licensingNS), Name: "License"}
	assert.False(t, reg.IsProtected(recased), "namespace matching follows import-path case sensitivity")
}

func TestIsProtectedEdgeCases(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	assert.False(t, reg.IsProtected(permission.TypeIdentity{Name: "string"}),
		"predeclared types have no namespace and are never protected here")

	var nilReg *registry.Registry

	assert.False(t, nilReg.IsProtected(permission.TypeIdentity{Namespace: licensingNS, Name: "License"}))
	assert.Empty(t, nilReg.Prefixes())
	assert.True(t, nilReg.Exemption().IsZero())
}

func TestNewDropsEmptyAndDuplicatePrefixes(t *testing.T) {
	t.Parallel()

	reg := registry.New([]string{"", "  ", licensingNS, licensingNS}, permission.TypeIdentity{})

	assert.Equal(t, []string{licensingNS}, reg.Prefixes())
}

func TestPrefixesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()

	got := reg.Prefixes()
	require.NotEmpty(t, got)
	got[0] = "mutated"

	assert.Equal(t, []string{licensingNS}, reg.Prefixes())
}

func TestIsFoundational(t *testing.T) {
	t.Parallel()

	assert.True(t, registry.IsFoundational(permission.TypeIdentity{Namespace: "reflect", Name: "Type"}))
	assert.True(t, registry.IsFoundational(permission.TypeIdentity{Namespace: "reflect", Name: "Value"}))
	assert.True(t, registry.IsFoundational(permission.TypeIdentity{Name: "string"}))
	assert.True(t, registry.IsFoundational(permission.TypeIdentity{Namespace: "os", Name: "Process"}))

	assert.False(t, registry.IsFoundational(permission.TypeIdentity{Namespace: "os", Name: "File"}))
	assert.False(t, registry.IsFoundational(permission.TypeIdentity{Namespace: licensingNS, Name: "License"}))
}

func TestFoundationalTypesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := registry.FoundationalTypes()
	require.NotEmpty(t, first)
	first[0] = permission.TypeIdentity{Namespace: "mutated", Name: "X"}

	assert.NotEqual(t, first[0], registry.FoundationalTypes()[0])
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, registry.Matches("reflect", "reflect"))
	assert.True(t, registry.Matches("a/b/c", "a/b"))
	assert.True(t, registry.Matches("a.b.c", "a.b"))
	assert.False(t, registry.Matches("a/bc", "a/b"))
	assert.False(t, registry.Matches("reflect", "reflectx"))
}
