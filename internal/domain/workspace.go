package domain

import "fmt"

// PackagesDir is the directory applications nest under in monorepo mode.
const PackagesDir = "packages"

// SharedTypesMember is the workspace member holding cross-application type
// declarations. Appended whenever TypeScript is enabled, for every tool.
const SharedTypesMember = PackagesDir + "/shared-types"

// TaskSettings describes one entry of a workspace task graph.
type TaskSettings struct {
	// DependsOn uses the upstream convention: "^build" means the build
	// tasks of every package this package depends on.
	DependsOn []string
	// Cache marks the task output as cacheable by the tool.
	Cache bool
	// Persistent marks a long-running foreground task (dev servers), which
	// must never be treated as a one-shot computation.
	Persistent bool
	// Outputs are the cacheable artifact globs.
	Outputs []string
}

// TaskGraph maps task names to their settings.
type TaskGraph map[string]TaskSettings

// WorkspaceDescriptor is the derived workspace-level metadata for monorepo
// mode: which packages are members and how the tool schedules their tasks.
type WorkspaceDescriptor struct {
	Tool MonorepoTool
	// MemberPaths lists every member relative to the workspace root, in
	// generation order. Tracked for all tools, including pnpm where the
	// manifest itself only carries the glob.
	MemberPaths []string
	// MemberGlobs is the glob form used by pnpm-workspace.yaml.
	MemberGlobs []string
	Tasks       TaskGraph
}

// HasMember reports whether path appears in MemberPaths.
func (w *WorkspaceDescriptor) HasMember(path string) bool {
	for _, m := range w.MemberPaths {
		if m == path {
			return true
		}
	}
	return false
}

// ComposeWorkspace derives the workspace descriptor for the selected tool.
// members are application paths relative to the workspace root; when
// typescript is enabled the shared-types member is appended unconditionally
// so every application can link it through the package manager's workspace
// mechanism. Each member appears exactly once.
func ComposeWorkspace(tool MonorepoTool, members []string, typescript bool) (*WorkspaceDescriptor, error) {
	if !isValidMonorepoTool(tool) {
		return nil, fmt.Errorf("%w: %q (valid: pnpm, nx, turborepo)", ErrUnsupportedMonorepoTool, tool)
	}

	ws := &WorkspaceDescriptor{Tool: tool}
	for _, m := range members {
		if !ws.HasMember(m) {
			ws.MemberPaths = append(ws.MemberPaths, m)
		}
	}
	if typescript && !ws.HasMember(SharedTypesMember) {
		ws.MemberPaths = append(ws.MemberPaths, SharedTypesMember)
	}

	// The glob form serves pnpm-workspace.yaml and the npm/yarn workspaces
	// field alike.
	ws.MemberGlobs = []string{PackagesDir + "/*"}

	switch tool {
	case ToolNx, ToolTurborepo:
		// build is topological: a member's build waits for its upstream
		// builds. dev is a long-running foreground process; clean has no
		// dependents. Neither is cacheable.
		ws.Tasks = TaskGraph{
			"build": {DependsOn: []string{"^build"}, Cache: true, Outputs: []string{"dist/**"}},
			"dev":   {Persistent: true},
			"clean": {},
		}
	}

	return ws, nil
}
