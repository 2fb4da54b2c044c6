package gitinit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fedforge/fedforge/internal/adapters/outbound/gitinit"
	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.RepoInitializer = (*gitinit.Initializer)(nil)

func TestInit_CreatesRepository(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, gitinit.New().Init(dir))

	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_ExistingRepositoryIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	g := gitinit.New()

	require.NoError(t, g.Init(dir))
	assert.NoError(t, g.Init(dir))
}
