package render_test

import (
	"encoding/json"
	"testing"

	"github.com/fedforge/fedforge/internal/domain"
	"github.com/fedforge/fedforge/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteConfig(t *testing.T) (domain.ProjectConfiguration, *domain.FederationDescriptor) {
	t.Helper()
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "my-products-app", 3001, domain.FrameworkReact, true, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	desc, err := domain.Synthesize(cfg, nil)
	require.NoError(t, err)
	return cfg, desc
}

func hostDescriptor(t *testing.T, remotes ...domain.RemoteReference) (domain.ProjectConfiguration, *domain.FederationDescriptor) {
	t.Helper()
	cfg, err := domain.NewProjectConfiguration(
		domain.RoleHost, "shell", 3000, domain.FrameworkReact, false, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	desc, err := domain.Synthesize(cfg, remotes)
	require.NoError(t, err)
	return cfg, desc
}

func TestFederationConfig_Remote(t *testing.T) {
	_, desc := remoteConfig(t)

	data, err := render.FederationConfig(desc)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "myProductsApp", doc["name"])
	assert.Equal(t, "remote", doc["type"])
	assert.Equal(t, float64(3001), doc["port"])
	assert.Equal(t, "react", doc["framework"])
	assert.Equal(t, map[string]any{"./App": "./src/App"}, doc["exposes"])
	assert.Nil(t, doc["remotes"])

	shared := doc["shared"].(map[string]any)
	react := shared["react"].(map[string]any)
	assert.Equal(t, true, react["singleton"])
	assert.Equal(t, false, react["strictVersion"])
	assert.Equal(t, "^18.0.0", react["requiredVersion"])
	assert.Equal(t, false, react["eager"])

	build := doc["build"].(map[string]any)
	assert.Equal(t, "dist", build["outputPath"])
	assert.Equal(t, "auto", build["publicPath"])

	devServer := doc["devServer"].(map[string]any)
	assert.Equal(t, true, devServer["hot"])
	assert.Equal(t, true, devServer["historyApiFallback"])
	assert.Equal(t, true, devServer["cors"])
}

func TestFederationConfig_HostRemoteEntries(t *testing.T) {
	_, desc := hostDescriptor(t,
		domain.RemoteReference{Name: "products", URL: "http://localhost:3001"},
		domain.RemoteReference{Name: "checkout", URL: "http://localhost:3002/entry.js"},
	)

	data, err := render.FederationConfig(desc)
	require.NoError(t, err)

	var doc struct {
		Remotes []struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Entry string `json:"entry"`
		} `json:"remotes"`
		Exposes map[string]string `json:"exposes"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Empty(t, doc.Exposes)
	require.Len(t, doc.Remotes, 2)
	assert.Equal(t, "products", doc.Remotes[0].Name)
	assert.Equal(t, "http://localhost:3001/remoteEntry.js", doc.Remotes[0].Entry)
	assert.Equal(t, "http://localhost:3002/entry.js", doc.Remotes[1].Entry)
}

func TestFederationConfig_Deterministic(t *testing.T) {
	_, desc := remoteConfig(t)

	first, err := render.FederationConfig(desc)
	require.NoError(t, err)
	second, err := render.FederationConfig(desc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRemoteEntryURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3001/remoteEntry.js", render.RemoteEntryURL("http://localhost:3001"))
	assert.Equal(t, "http://localhost:3001/remoteEntry.js", render.RemoteEntryURL("http://localhost:3001/"))
	assert.Equal(t, "https://cdn.example.com/mf/entry.js", render.RemoteEntryURL("https://cdn.example.com/mf/entry.js"))
}

func TestWebpackConfig_DerivesEverythingFromFederationFile(t *testing.T) {
	cfg, _ := remoteConfig(t)

	data, err := render.WebpackConfig(cfg)
	require.NoError(t, err)
	js := string(data)

	// No value present in federation.config.json may be hardcoded.
	assert.NotContains(t, js, "3001")
	assert.NotContains(t, js, "myProductsApp")
	assert.Contains(t, js, "require('./federation.config.json')")
	assert.Contains(t, js, "federation.port")
	assert.Contains(t, js, "federation.shared")
	assert.Contains(t, js, "federation.exposes || {}")
	assert.Contains(t, js, "remote.name + '@' + remote.entry")
	assert.Contains(t, js, "ModuleFederationPlugin")
}

func TestWebpackConfig_LoaderWiring(t *testing.T) {
	reactTS, _ := remoteConfig(t)
	data, err := render.WebpackConfig(reactTS)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ts-loader")
	assert.Contains(t, string(data), "babel-loader")
	assert.NotContains(t, string(data), "vue-loader")

	vueCfg, err := domain.NewProjectConfiguration(
		domain.RoleRemote, "catalog", 3002, domain.FrameworkVue, false, false, "", domain.ManagerNpm,
	)
	require.NoError(t, err)
	data, err = render.WebpackConfig(vueCfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vue-loader")
	assert.Contains(t, string(data), "VueLoaderPlugin")
	assert.NotContains(t, string(data), "ts-loader")
}

func TestManifest_RendersSortedDeterministicJSON(t *testing.T) {
	cfg, desc := remoteConfig(t)
	m := domain.BuildManifest(cfg, desc.Shared)

	first, err := render.Manifest(m)
	require.NoError(t, err)
	second, err := render.Manifest(m)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var decoded domain.Manifest
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.Equal(t, m.Name, decoded.Name)
	assert.Equal(t, m.Dependencies, decoded.Dependencies)
}
