package domain

// Manifest models a generated package.json. Field order here is the field
// order in the emitted file; map values are emitted with sorted keys, so
// identical inputs always produce identical bytes.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Workspaces      []string          `json:"workspaces,omitempty"`
	Types           string            `json:"types,omitempty"`
}

// Build-tool versions declared in every generated application manifest.
var buildToolDeps = map[string]string{
	"webpack":             "^5.89.0",
	"webpack-cli":         "^5.1.4",
	"webpack-dev-server":  "^4.15.1",
	"html-webpack-plugin": "^5.6.0",
	"rimraf":              "^5.0.5",
}

var reactToolDeps = map[string]string{
	"@babel/core":         "^7.23.6",
	"@babel/preset-react": "^7.23.3",
	"babel-loader":        "^9.1.3",
}

var vueToolDeps = map[string]string{
	"vue-loader": "^17.3.1",
}

var typescriptDeps = map[string]string{
	"typescript": "^5.3.3",
	"ts-loader":  "^9.5.1",
}

var reactTypeDeps = map[string]string{
	"@types/react":     "^18.2.45",
	"@types/react-dom": "^18.2.18",
}

// BuildManifest derives an application manifest from the validated
// configuration and its shared policy. The framework runtime dependencies
// are pinned to the exact ranges the shared policy requires, so the
// installed copy always satisfies the negotiated singleton.
func BuildManifest(cfg ProjectConfiguration, shared SharedDependencyPolicy) Manifest {
	m := Manifest{
		Name:    KebabCase(cfg.NormalizedName),
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"build": "webpack --mode production",
			"dev":   "webpack serve --mode development",
			"clean": "rimraf dist",
		},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}

	for pkg, dep := range shared {
		m.Dependencies[pkg] = dep.RequiredVersion
	}

	for pkg, v := range buildToolDeps {
		m.DevDependencies[pkg] = v
	}
	switch cfg.Framework {
	case FrameworkReact:
		for pkg, v := range reactToolDeps {
			m.DevDependencies[pkg] = v
		}
	case FrameworkVue:
		for pkg, v := range vueToolDeps {
			m.DevDependencies[pkg] = v
		}
	}

	if cfg.TypeScript {
		for pkg, v := range typescriptDeps {
			m.DevDependencies[pkg] = v
		}
		if cfg.Framework == FrameworkReact {
			for pkg, v := range reactTypeDeps {
				m.DevDependencies[pkg] = v
			}
		}
		if cfg.Monorepo {
			m.Dependencies["shared-types"] = workspaceLinkRange(cfg.PackageManager)
		}
	}

	return m
}

// BuildWorkspaceManifest derives the workspace-root manifest for monorepo
// mode. npm and yarn read the workspaces field; pnpm reads
// pnpm-workspace.yaml instead, so the field is omitted for it.
func BuildWorkspaceManifest(cfg ProjectConfiguration, ws *WorkspaceDescriptor) Manifest {
	m := Manifest{
		Name:    KebabCase(cfg.NormalizedName) + "-workspace",
		Version: "0.1.0",
		Private: true,
		Scripts: workspaceScripts(ws.Tool),
	}
	if cfg.PackageManager != ManagerPnpm {
		m.Workspaces = append([]string(nil), ws.MemberGlobs...)
		if len(m.Workspaces) == 0 {
			m.Workspaces = []string{PackagesDir + "/*"}
		}
	}
	switch ws.Tool {
	case ToolNx:
		m.DevDependencies = map[string]string{"nx": "^19.8.0"}
	case ToolTurborepo:
		m.DevDependencies = map[string]string{"turbo": "^2.3.0"}
	}
	return m
}

// BuildSharedTypesManifest derives the manifest for the shared-types
// workspace member.
func BuildSharedTypesManifest() Manifest {
	return Manifest{
		Name:    "shared-types",
		Version: "0.1.0",
		Private: true,
		Types:   "index.d.ts",
	}
}

func workspaceScripts(tool MonorepoTool) map[string]string {
	switch tool {
	case ToolNx:
		return map[string]string{
			"build": "nx run-many -t build",
			"dev":   "nx run-many -t dev",
			"clean": "nx run-many -t clean",
		}
	case ToolTurborepo:
		return map[string]string{
			"build": "turbo run build",
			"dev":   "turbo run dev",
			"clean": "turbo run clean",
		}
	default: // pnpm
		return map[string]string{
			"build": "pnpm -r run build",
			"dev":   "pnpm -r run dev",
			"clean": "pnpm -r run clean",
		}
	}
}

func workspaceLinkRange(pm PackageManager) string {
	if pm == ManagerPnpm {
		return "workspace:*"
	}
	return "*"
}
