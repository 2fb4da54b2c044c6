package render

import (
	"sort"

	"github.com/fedforge/fedforge/internal/domain"
	"gopkg.in/yaml.v3"
)

type pnpmWorkspaceDoc struct {
	Packages []string `yaml:"packages"`
}

// PnpmWorkspace renders pnpm-workspace.yaml. pnpm takes members as the
// packages/* glob; the enumerated member list stays a workspace-descriptor
// concern only.
func PnpmWorkspace(ws *domain.WorkspaceDescriptor) ([]byte, error) {
	return yaml.Marshal(pnpmWorkspaceDoc{Packages: ws.MemberGlobs})
}

type turboTaskDoc struct {
	DependsOn  []string `json:"dependsOn,omitempty"`
	Outputs    []string `json:"outputs,omitempty"`
	Cache      *bool    `json:"cache,omitempty"`
	Persistent bool     `json:"persistent,omitempty"`
}

type turboDoc struct {
	Schema string                  `json:"$schema"`
	Tasks  map[string]turboTaskDoc `json:"tasks"`
}

// TurboConfig renders turbo.json from the composed task graph.
func TurboConfig(ws *domain.WorkspaceDescriptor) ([]byte, error) {
	doc := turboDoc{
		Schema: "https://turbo.build/schema.json",
		Tasks:  map[string]turboTaskDoc{},
	}
	for name, t := range ws.Tasks {
		task := turboTaskDoc{
			DependsOn:  t.DependsOn,
			Outputs:    t.Outputs,
			Persistent: t.Persistent,
		}
		if !t.Cache {
			task.Cache = boolPtr(false)
		}
		doc.Tasks[name] = task
	}
	return marshalJSON(doc)
}

type nxTargetDoc struct {
	DependsOn []string `json:"dependsOn,omitempty"`
	Outputs   []string `json:"outputs,omitempty"`
	Cache     bool     `json:"cache"`
}

type nxDoc struct {
	Schema         string                 `json:"$schema"`
	TargetDefaults map[string]nxTargetDoc `json:"targetDefaults"`
}

// NxConfig renders nx.json from the composed task graph.
func NxConfig(ws *domain.WorkspaceDescriptor) ([]byte, error) {
	doc := nxDoc{
		Schema:         "./node_modules/nx/schemas/nx-schema.json",
		TargetDefaults: map[string]nxTargetDoc{},
	}
	for name, t := range ws.Tasks {
		target := nxTargetDoc{
			DependsOn: t.DependsOn,
			Cache:     t.Cache,
		}
		for _, out := range t.Outputs {
			target.Outputs = append(target.Outputs, "{projectRoot}/"+out)
		}
		doc.TargetDefaults[name] = target
	}
	return marshalJSON(doc)
}

// WorkspaceReadme renders the top-level README for a monorepo workspace.
func WorkspaceReadme(cfg domain.ProjectConfiguration, ws *domain.WorkspaceDescriptor) []byte {
	members := append([]string(nil), ws.MemberPaths...)
	sort.Strings(members)

	out := "# " + domain.KebabCase(cfg.NormalizedName) + "-workspace\n\n" +
		"Micro-frontend workspace coordinated by " + string(ws.Tool) + ".\n\nMembers:\n\n"
	for _, m := range members {
		out += "- `" + m + "`\n"
	}
	out += "\n```sh\n" + string(cfg.PackageManager) + " install\n" +
		string(cfg.PackageManager) + " run dev\n```\n"
	return []byte(out)
}

func boolPtr(b bool) *bool { return &b }
