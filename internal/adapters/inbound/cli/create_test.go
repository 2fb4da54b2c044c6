package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fedforge/fedforge/internal/adapters/inbound/cli"
	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCreate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"create"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCreate_RemoteWritesProject(t *testing.T) {
	dir := t.TempDir()

	out, err := runCreate(t, dir,
		"--remote", "--name", "my-products-app", "--port", "3001", "--typescript",
	)
	require.NoError(t, err)

	for _, p := range []string{
		"federation.config.json",
		"webpack.config.js",
		"package.json",
		"tsconfig.json",
		"src/index.ts",
		"src/bootstrap.tsx",
		"src/App.tsx",
		"public/index.html",
		".gitignore",
		"README.md",
	} {
		_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
		assert.NoError(t, statErr, p)
	}

	assert.Contains(t, out, "myProductsApp")
}

func TestCreate_HostWithRemoteRefs(t *testing.T) {
	dir := t.TempDir()

	_, err := runCreate(t, dir,
		"--host", "--name", "shell",
		"--remote-ref", "products@http://localhost:3001",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "federation.config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"products"`)
	assert.Contains(t, string(data), "remoteEntry.js")
}

func TestCreate_MonorepoLayout(t *testing.T) {
	dir := t.TempDir()

	_, err := runCreate(t, dir,
		"--host", "--name", "shell", "--monorepo", "--tool", "turborepo", "--typescript",
	)
	require.NoError(t, err)

	for _, p := range []string{
		"package.json",
		"turbo.json",
		"packages/shared-types/index.d.ts",
		"packages/shell/federation.config.json",
	} {
		_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
		assert.NoError(t, statErr, p)
	}
}

func TestCreate_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	out, err := runCreate(t, dir, "--remote", "--name", "products", "--dry-run")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, out, "federation.config.json")
}

func TestCreate_HostAndRemoteAreExclusive(t *testing.T) {
	_, err := runCreate(t, t.TempDir(), "--host", "--remote", "--name", "x")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestCreate_RejectsMalformedRemoteRef(t *testing.T) {
	_, err := runCreate(t, t.TempDir(),
		"--host", "--name", "shell", "--remote-ref", "products",
	)
	assert.ErrorIs(t, err, domain.ErrInvalidRemoteName)

	_, err = runCreate(t, t.TempDir(),
		"--host", "--name", "shell", "--remote-ref", "products@",
	)
	assert.ErrorIs(t, err, domain.ErrMissingRemoteURL)
}

func TestCreate_RejectsInvalidPort(t *testing.T) {
	_, err := runCreate(t, t.TempDir(), "--remote", "--name", "products", "--port", "80")
	assert.ErrorIs(t, err, domain.ErrInvalidPort)
}
