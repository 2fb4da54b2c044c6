package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fedforge/fedforge/internal/adapters/outbound/config"
	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.DefaultsLoader = (*config.YAMLLoader)(nil)

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fedforge.yaml"), []byte(content), 0644))
	return dir
}

func TestLoad_MissingFileYieldsZeroDefaults(t *testing.T) {
	d, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Defaults{}, d)
}

func TestLoad_ParsesDefaults(t *testing.T) {
	dir := writeDefaults(t, `
framework: vue
package_manager: pnpm
typescript: true
monorepo_tool: turborepo
`)

	d, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.FrameworkVue, d.Framework)
	assert.Equal(t, domain.ManagerPnpm, d.PackageManager)
	require.NotNil(t, d.TypeScript)
	assert.True(t, *d.TypeScript)
	assert.Equal(t, domain.ToolTurborepo, d.MonorepoTool)
}

func TestLoad_PartialFileLeavesRestUnset(t *testing.T) {
	dir := writeDefaults(t, "framework: react\n")

	d, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.FrameworkReact, d.Framework)
	assert.Empty(t, d.PackageManager)
	assert.Nil(t, d.TypeScript)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	for name, content := range map[string]string{
		"framework":       "framework: angular\n",
		"package manager": "package_manager: bower\n",
		"monorepo tool":   "monorepo_tool: lerna\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := writeDefaults(t, content)
			_, err := config.New().Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := writeDefaults(t, "framework: [unclosed\n")
	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
