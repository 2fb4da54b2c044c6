package domain_test

import (
	"testing"

	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest_PinsFrameworkToSharedPolicy(t *testing.T) {
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "my-products-app", 3001, domain.FrameworkReact, false, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	shared, err := domain.ResolveSharedPolicy(cfg.Framework)
	require.NoError(t, err)

	m := domain.BuildManifest(cfg, shared)

	assert.Equal(t, "my-products-app", m.Name)
	assert.Equal(t, "^18.0.0", m.Dependencies["react"])
	assert.Equal(t, "^18.0.0", m.Dependencies["react-dom"])
	assert.Contains(t, m.DevDependencies, "webpack")
	assert.Contains(t, m.DevDependencies, "babel-loader")
	assert.NotContains(t, m.DevDependencies, "typescript")
	assert.NotContains(t, m.DevDependencies, "vue-loader")
}

func TestBuildManifest_TypeScriptDeps(t *testing.T) {
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "products", 3001, domain.FrameworkReact, true, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	shared, err := domain.ResolveSharedPolicy(cfg.Framework)
	require.NoError(t, err)

	m := domain.BuildManifest(cfg, shared)

	assert.Contains(t, m.DevDependencies, "typescript")
	assert.Contains(t, m.DevDependencies, "ts-loader")
	assert.Contains(t, m.DevDependencies, "@types/react")
	assert.NotContains(t, m.Dependencies, "shared-types")
}

func TestBuildManifest_VueDeps(t *testing.T) {
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "catalog", 3002, domain.FrameworkVue, true, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	shared, err := domain.ResolveSharedPolicy(cfg.Framework)
	require.NoError(t, err)

	m := domain.BuildManifest(cfg, shared)

	assert.Equal(t, "^3.0.0", m.Dependencies["vue"])
	assert.Contains(t, m.DevDependencies, "vue-loader")
	assert.NotContains(t, m.DevDependencies, "@types/react")
	assert.NotContains(t, m.DevDependencies, "babel-loader")
}

func TestBuildManifest_WorkspaceLinkForSharedTypes(t *testing.T) {
	pnpmCfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "products", 3001, domain.FrameworkReact, true, true, domain.ToolPnpm, domain.ManagerPnpm,
	)
	require.NoError(t, err)
	shared, err := domain.ResolveSharedPolicy(pnpmCfg.Framework)
	require.NoError(t, err)

	assert.Equal(t, "workspace:*", domain.BuildManifest(pnpmCfg, shared).Dependencies["shared-types"])

	npmCfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "products", 3001, domain.FrameworkReact, true, true, domain.ToolTurborepo, domain.ManagerNpm,
	)
	require.NoError(t, err)
	assert.Equal(t, "*", domain.BuildManifest(npmCfg, shared).Dependencies["shared-types"])
}

func TestBuildWorkspaceManifest(t *testing.T) {
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleHost, "shell", 3000, domain.FrameworkReact, true, true, domain.ToolTurborepo, domain.ManagerNpm,
	)
	require.NoError(t, err)
	ws, err := domain.ComposeWorkspace(cfg.MonorepoTool, []string{"packages/shell"}, true)
	require.NoError(t, err)

	m := domain.BuildWorkspaceManifest(cfg, ws)

	assert.Equal(t, "shell-workspace", m.Name)
	assert.Equal(t, []string{"packages/*"}, m.Workspaces)
	assert.Contains(t, m.DevDependencies, "turbo")
	assert.Equal(t, "turbo run build", m.Scripts["build"])
}

func TestBuildWorkspaceManifest_PnpmOmitsWorkspacesField(t *testing.T) {
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleHost, "shell", 3000, domain.FrameworkReact, false, true, domain.ToolPnpm, domain.ManagerPnpm,
	)
	require.NoError(t, err)
	ws, err := domain.ComposeWorkspace(cfg.MonorepoTool, []string{"packages/shell"}, false)
	require.NoError(t, err)

	m := domain.BuildWorkspaceManifest(cfg, ws)
	assert.Empty(t, m.Workspaces)
	assert.Equal(t, "pnpm -r run build", m.Scripts["build"])
}

func TestBuildSharedTypesManifest(t *testing.T) {
	m := domain.BuildSharedTypesManifest()
	assert.Equal(t, "shared-types", m.Name)
	assert.Equal(t, "index.d.ts", m.Types)
	assert.True(t, m.Private)
}
