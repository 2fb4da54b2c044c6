package domain_test

import (
	"testing"

	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSharedPolicy_React(t *testing.T) {
	policy, err := domain.ResolveSharedPolicy(domain.FrameworkReact)
	require.NoError(t, err)

	require.Len(t, policy, 2)
	for _, pkg := range []string{"react", "react-dom"} {
		dep, ok := policy[pkg]
		require.True(t, ok, pkg)
		assert.True(t, dep.Singleton, pkg)
		assert.False(t, dep.StrictVersion, pkg)
		assert.False(t, dep.Eager, pkg)
		assert.Equal(t, "^18.0.0", dep.RequiredVersion, pkg)
	}
}

func TestResolveSharedPolicy_Vue(t *testing.T) {
	policy, err := domain.ResolveSharedPolicy(domain.FrameworkVue)
	require.NoError(t, err)

	require.Len(t, policy, 1)
	dep, ok := policy["vue"]
	require.True(t, ok)
	assert.True(t, dep.Singleton)
	assert.False(t, dep.StrictVersion)
	assert.False(t, dep.Eager)
	assert.Equal(t, "^3.0.0", dep.RequiredVersion)
}

func TestResolveSharedPolicy_UnknownFramework(t *testing.T) {
	_, err := domain.ResolveSharedPolicy("angular")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFramework)
}
